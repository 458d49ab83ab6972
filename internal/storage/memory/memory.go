// Package memory is an in-process repository with the same contract as the
// PostgreSQL store: unique emails, user foreign keys and cascading user
// deletes. Nothing is persisted.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"skillport-api/internal/models"
	"skillport-api/internal/storage"
)

type Store struct {
	mu sync.RWMutex

	nextID         int64
	users          map[int64]models.User
	jobs           map[int64]models.Job
	applications   map[int64]models.Application
	skills         map[int64]models.Skill
	projects       map[int64]models.Project
	certifications map[int64]models.Certification

	// unavailable fails CountUsers, letting tests simulate an outage.
	unavailable error
}

func New() *Store {
	return &Store{
		users:          make(map[int64]models.User),
		jobs:           make(map[int64]models.Job),
		applications:   make(map[int64]models.Application),
		skills:         make(map[int64]models.Skill),
		projects:       make(map[int64]models.Project),
		certifications: make(map[int64]models.Certification),
	}
}

func (s *Store) Close() error {
	return nil
}

// SetUnavailable makes CountUsers fail with err until called with nil.
func (s *Store) SetUnavailable(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = err
}

// id must be called with the write lock held.
func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func sortedValues[T any](m map[int64]T, keep func(T) bool) []T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// users

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user: %w: email %s", storage.ErrDuplicate, user.Email)
		}
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.ID = s.id()
	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.users, nil), nil
}

func (s *Store) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.users, func(u models.User) bool {
		return strings.EqualFold(u.Role, role)
	}), nil
}

func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return fmt.Errorf("update user: %w", storage.ErrNotFound)
	}
	for id, u := range s.users {
		if id != user.ID && u.Email == user.Email {
			return fmt.Errorf("update user: %w: email %s", storage.ErrDuplicate, user.Email)
		}
	}

	s.users[user.ID] = *user
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return false, nil
	}

	for id, v := range s.skills {
		if v.UserID == userID {
			delete(s.skills, id)
		}
	}
	for id, v := range s.projects {
		if v.UserID == userID {
			delete(s.projects, id)
		}
	}
	for id, v := range s.certifications {
		if v.UserID == userID {
			delete(s.certifications, id)
		}
	}
	delete(s.users, userID)
	return true, nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.unavailable != nil {
		return 0, fmt.Errorf("count users: %w", s.unavailable)
	}
	return len(s.users), nil
}

// jobs

func (s *Store) CreateJob(ctx context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	job.ID = s.id()
	s.jobs[job.ID] = *job
	return nil
}

func (s *Store) GetJob(ctx context.Context, jobID int64) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[jobID]
	if !ok {
		return nil, nil
	}
	return &j, nil
}

func newestFirst(jobs []models.Job) []models.Job {
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].ID > jobs[j].ID
		}
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs
}

func (s *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(sortedValues(s.jobs, nil)), nil
}

func (s *Store) ListJobsByRecruiter(ctx context.Context, recruiterID int64) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(sortedValues(s.jobs, func(j models.Job) bool {
		return j.RecruiterID == recruiterID
	})), nil
}

func (s *Store) DeleteJob(ctx context.Context, jobID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, jobID)
	return nil
}

// applications

func (s *Store) CreateApplication(ctx context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now()
	}
	app.ID = s.id()
	s.applications[app.ID] = *app
	return nil
}

// withJob must be called with the read lock held.
func (s *Store) withJob(app models.Application) models.Application {
	if j, ok := s.jobs[app.JobID]; ok {
		if j.Title != "" {
			app.JobTitle = j.Title
		}
		if j.Company != "" {
			app.CompanyName = j.Company
		}
	}
	return app
}

func (s *Store) GetApplication(ctx context.Context, appID int64) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications[appID]
	if !ok {
		return nil, nil
	}
	a = s.withJob(a)
	return &a, nil
}

func (s *Store) listApplications(keep func(models.Application) bool) []models.Application {
	apps := sortedValues(s.applications, keep)
	for i := range apps {
		apps[i] = s.withJob(apps[i])
	}
	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].AppliedAt.Equal(apps[j].AppliedAt) {
			return apps[i].ID > apps[j].ID
		}
		return apps[i].AppliedAt.After(apps[j].AppliedAt)
	})
	return apps
}

func (s *Store) ListApplicationsByStudent(ctx context.Context, studentID int64) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listApplications(func(a models.Application) bool {
		return a.StudentID == studentID
	}), nil
}

func (s *Store) ListApplicationsByJob(ctx context.Context, jobID int64) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listApplications(func(a models.Application) bool {
		return a.JobID == jobID
	}), nil
}

func (s *Store) UpdateApplicationStatus(ctx context.Context, appID int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[appID]
	if !ok {
		return fmt.Errorf("update application status: %w", storage.ErrNotFound)
	}
	a.Status = status
	s.applications[appID] = a
	return nil
}

// skills

// checkUser must be called with the lock held.
func (s *Store) checkUser(op string, userID int64) error {
	if _, ok := s.users[userID]; !ok {
		return fmt.Errorf("%s: %w: user %d", op, storage.ErrInvalidReference, userID)
	}
	return nil
}

func (s *Store) CreateSkill(ctx context.Context, skill *models.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUser("create skill", skill.UserID); err != nil {
		return err
	}
	skill.ID = s.id()
	s.skills[skill.ID] = *skill
	return nil
}

func (s *Store) ListSkillsByUser(ctx context.Context, userID int64) ([]models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.skills, func(v models.Skill) bool {
		return v.UserID == userID
	}), nil
}

func (s *Store) DeleteSkill(ctx context.Context, skillID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.skills, skillID)
	return nil
}

// projects

func (s *Store) CreateProject(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUser("create project", project.UserID); err != nil {
		return err
	}
	project.ID = s.id()
	s.projects[project.ID] = *project
	return nil
}

func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.projects, nil), nil
}

func (s *Store) ListProjectsByUser(ctx context.Context, userID int64) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.projects, func(v models.Project) bool {
		return v.UserID == userID
	}), nil
}

func (s *Store) DeleteProject(ctx context.Context, projectID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, projectID)
	return nil
}

// certifications

func (s *Store) CreateCertification(ctx context.Context, cert *models.Certification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUser("create certification", cert.UserID); err != nil {
		return err
	}
	cert.ID = s.id()
	s.certifications[cert.ID] = *cert
	return nil
}

func (s *Store) ListCertifications(ctx context.Context) ([]models.Certification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.certifications, nil), nil
}

func (s *Store) ListCertificationsByUser(ctx context.Context, userID int64) ([]models.Certification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.certifications, func(v models.Certification) bool {
		return v.UserID == userID
	}), nil
}

func (s *Store) DeleteCertification(ctx context.Context, certID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.certifications, certID)
	return nil
}
