package postgres

import (
	"context"
	"fmt"
	"time"

	"skillport-api/internal/models"

	"github.com/gocraft/dbr/v2"
	"go.uber.org/zap"
)

var jobColumns = []string{
	"title", "company", "location", "type", "salary", "description", "tags", "created_at", "recruiter_id",
}

func (s *Store) CreateJob(ctx context.Context, job *models.Job) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	err := s.sess.
		InsertInto("jobs").
		Columns(jobColumns...).
		Record(job).
		Returning("id").
		LoadContext(ctx, &job.ID)

	if err != nil {
		s.logger.Error("failed to create job",
			zap.Int64("recruiter_id", job.RecruiterID),
			zap.Error(err),
		)
		return fmt.Errorf("create job: %w", classify(err))
	}

	s.logger.Info("job created",
		zap.Int64("job_id", job.ID),
		zap.Int64("recruiter_id", job.RecruiterID),
	)

	return nil
}

func (s *Store) GetJob(ctx context.Context, jobID int64) (*models.Job, error) {
	var job models.Job

	err := s.sess.
		Select("*").
		From("jobs").
		Where("id = ?", jobID).
		LoadOneContext(ctx, &job)

	if err == dbr.ErrNotFound {
		return nil, nil
	}

	if err != nil {
		s.logger.Error("failed to get job",
			zap.Int64("job_id", jobID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get job: %w", err)
	}

	return &job, nil
}

func (s *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}

	_, err := s.sess.
		Select("*").
		From("jobs").
		OrderDesc("created_at").
		OrderDesc("id").
		LoadContext(ctx, &jobs)

	if err != nil {
		s.logger.Error("failed to list jobs", zap.Error(err))
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return jobs, nil
}

func (s *Store) ListJobsByRecruiter(ctx context.Context, recruiterID int64) ([]models.Job, error) {
	jobs := []models.Job{}

	_, err := s.sess.
		Select("*").
		From("jobs").
		Where("recruiter_id = ?", recruiterID).
		OrderDesc("created_at").
		OrderDesc("id").
		LoadContext(ctx, &jobs)

	if err != nil {
		s.logger.Error("failed to list jobs by recruiter",
			zap.Int64("recruiter_id", recruiterID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("list jobs by recruiter: %w", err)
	}

	return jobs, nil
}

func (s *Store) DeleteJob(ctx context.Context, jobID int64) error {
	result, err := s.sess.
		DeleteFrom("jobs").
		Where("id = ?", jobID).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to delete job",
			zap.Int64("job_id", jobID),
			zap.Error(err),
		)
		return fmt.Errorf("delete job: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()

	s.logger.Info("job deleted",
		zap.Int64("job_id", jobID),
		zap.Int64("count", rowsAffected),
	)

	return nil
}
