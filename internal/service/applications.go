package service

import (
	"context"
	"errors"
	"strings"

	"skillport-api/internal/apperr"
	"skillport-api/internal/models"
	"skillport-api/internal/storage"
)

type jobGetter interface {
	GetJob(ctx context.Context, jobID int64) (*models.Job, error)
}

type ApplicationService struct {
	repo ApplicationRepository
	jobs jobGetter
}

func NewApplicationService(repo ApplicationRepository, jobs JobRepository) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs}
}

func (s *ApplicationService) ListByStudent(ctx context.Context, studentID int64) ([]models.Application, error) {
	apps, err := s.repo.ListApplicationsByStudent(ctx, studentID)
	if err != nil {
		return nil, apperr.Server("Failed to load applications", err)
	}
	return apps, nil
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID int64) ([]models.Application, error) {
	apps, err := s.repo.ListApplicationsByJob(ctx, jobID)
	if err != nil {
		return nil, apperr.Server("Failed to load applications", err)
	}
	return apps, nil
}

// Create files an application. Status defaults to Pending, and a blank job
// title or company name is copied from the referenced job when it exists.
func (s *ApplicationService) Create(ctx context.Context, app models.Application) (*models.Application, error) {
	app.ID = 0
	if strings.TrimSpace(app.Status) == "" {
		app.Status = models.ApplicationStatusPending
	}

	if app.JobID != 0 && (app.JobTitle == "" || app.CompanyName == "") {
		job, err := s.jobs.GetJob(ctx, app.JobID)
		if err != nil {
			return nil, apperr.Server("Failed to create application", err)
		}
		if job != nil {
			if app.JobTitle == "" {
				app.JobTitle = job.Title
			}
			if app.CompanyName == "" {
				app.CompanyName = job.Company
			}
		}
	}

	if err := s.repo.CreateApplication(ctx, &app); err != nil {
		return nil, apperr.Server("Failed to create application", err)
	}
	return &app, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, appID int64, status string) (*models.Application, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, apperr.Validation("Status is required")
	}

	if err := s.repo.UpdateApplicationStatus(ctx, appID, status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("Application not found")
		}
		return nil, apperr.Server("Failed to update application", err)
	}

	app, err := s.repo.GetApplication(ctx, appID)
	if err != nil {
		return nil, apperr.Server("Failed to load application", err)
	}
	if app == nil {
		// deleted between the update and the read
		return nil, apperr.NotFound("Application not found")
	}

	return app, nil
}
