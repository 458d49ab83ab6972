package service

import (
	"context"

	"skillport-api/internal/apperr"
	"skillport-api/internal/models"
)

const maxJobDescription = 2000

type JobService struct {
	repo JobRepository
}

func NewJobService(repo JobRepository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.repo.ListJobs(ctx)
	if err != nil {
		return nil, apperr.Server("Failed to load jobs", err)
	}
	return jobs, nil
}

func (s *JobService) ListByRecruiter(ctx context.Context, recruiterID int64) ([]models.Job, error) {
	jobs, err := s.repo.ListJobsByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, apperr.Server("Failed to load jobs", err)
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, jobID int64) (*models.Job, error) {
	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, apperr.Server("Failed to load job", err)
	}
	if job == nil {
		return nil, apperr.NotFound("Job not found")
	}
	return job, nil
}

// Create stores job as posted; the id is always assigned by storage.
func (s *JobService) Create(ctx context.Context, job models.Job) (*models.Job, error) {
	if len([]rune(job.Description)) > maxJobDescription {
		return nil, apperr.Validation("Description must be at most 2000 characters")
	}
	job.ID = 0

	if err := s.repo.CreateJob(ctx, &job); err != nil {
		return nil, apperr.Server("Failed to create job", err)
	}
	return &job, nil
}

// Delete succeeds whether or not the job existed.
func (s *JobService) Delete(ctx context.Context, jobID int64) error {
	if err := s.repo.DeleteJob(ctx, jobID); err != nil {
		return apperr.Server("Failed to delete job", err)
	}
	return nil
}
