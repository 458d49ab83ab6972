// Package service holds the request rules that sit between the HTTP handlers
// and the repositories: validation, email normalisation, credential checks
// and classification of storage failures into apperr kinds.
package service

import (
	"context"

	"skillport-api/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID int64) (bool, error)
	CountUsers(ctx context.Context) (int, error)
}

type JobRepository interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, jobID int64) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListJobsByRecruiter(ctx context.Context, recruiterID int64) ([]models.Job, error)
	DeleteJob(ctx context.Context, jobID int64) error
}

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app *models.Application) error
	GetApplication(ctx context.Context, appID int64) (*models.Application, error)
	ListApplicationsByStudent(ctx context.Context, studentID int64) ([]models.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID int64) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, appID int64, status string) error
}

type SkillRepository interface {
	CreateSkill(ctx context.Context, skill *models.Skill) error
	ListSkillsByUser(ctx context.Context, userID int64) ([]models.Skill, error)
	DeleteSkill(ctx context.Context, skillID int64) error
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, project *models.Project) error
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListProjectsByUser(ctx context.Context, userID int64) ([]models.Project, error)
	DeleteProject(ctx context.Context, projectID int64) error
}

type CertificationRepository interface {
	CreateCertification(ctx context.Context, cert *models.Certification) error
	ListCertifications(ctx context.Context) ([]models.Certification, error)
	ListCertificationsByUser(ctx context.Context, userID int64) ([]models.Certification, error)
	DeleteCertification(ctx context.Context, certID int64) error
}

// Store is everything a storage driver has to provide.
type Store interface {
	UserRepository
	JobRepository
	ApplicationRepository
	SkillRepository
	ProjectRepository
	CertificationRepository

	Close() error
}

// LoginLimiter counts failed logins per email.
type LoginLimiter interface {
	RegisterLoginFailure(ctx context.Context, email string) (int64, error)
	LoginFailures(ctx context.Context, email string) (int64, error)
	ResetLoginFailures(ctx context.Context, email string) error
}
