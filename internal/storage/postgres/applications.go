package postgres

import (
	"context"
	"fmt"
	"time"

	"skillport-api/internal/models"
	"skillport-api/internal/storage"

	"github.com/gocraft/dbr/v2"
	"go.uber.org/zap"
)

var applicationColumns = []string{
	"student_id", "job_id", "status", "applied_at", "job_title", "company_name",
}

// applicationsWithJob selects applications with the job title and company
// taken from the live job row, falling back to the copy stored at apply time.
func (s *Store) applicationsWithJob() *dbr.SelectStmt {
	return s.sess.
		Select(
			"a.id",
			"a.student_id",
			"a.job_id",
			"a.status",
			"a.applied_at",
			"COALESCE(NULLIF(j.title, ''), a.job_title) AS job_title",
			"COALESCE(NULLIF(j.company, ''), a.company_name) AS company_name",
		).
		From(dbr.I("applications").As("a")).
		LeftJoin(dbr.I("jobs").As("j"), "j.id = a.job_id")
}

func (s *Store) CreateApplication(ctx context.Context, app *models.Application) error {
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now()
	}

	err := s.sess.
		InsertInto("applications").
		Columns(applicationColumns...).
		Record(app).
		Returning("id").
		LoadContext(ctx, &app.ID)

	if err != nil {
		s.logger.Error("failed to create application",
			zap.Int64("student_id", app.StudentID),
			zap.Int64("job_id", app.JobID),
			zap.Error(err),
		)
		return fmt.Errorf("create application: %w", classify(err))
	}

	s.logger.Info("application created",
		zap.Int64("application_id", app.ID),
		zap.Int64("student_id", app.StudentID),
		zap.Int64("job_id", app.JobID),
	)

	return nil
}

func (s *Store) GetApplication(ctx context.Context, appID int64) (*models.Application, error) {
	var app models.Application

	err := s.applicationsWithJob().
		Where("a.id = ?", appID).
		LoadOneContext(ctx, &app)

	if err == dbr.ErrNotFound {
		return nil, nil
	}

	if err != nil {
		s.logger.Error("failed to get application",
			zap.Int64("application_id", appID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get application: %w", err)
	}

	return &app, nil
}

func (s *Store) ListApplicationsByStudent(ctx context.Context, studentID int64) ([]models.Application, error) {
	apps := []models.Application{}

	_, err := s.applicationsWithJob().
		Where("a.student_id = ?", studentID).
		OrderDesc("a.applied_at").
		OrderDesc("a.id").
		LoadContext(ctx, &apps)

	if err != nil {
		s.logger.Error("failed to list applications by student",
			zap.Int64("student_id", studentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("list applications by student: %w", err)
	}

	return apps, nil
}

func (s *Store) ListApplicationsByJob(ctx context.Context, jobID int64) ([]models.Application, error) {
	apps := []models.Application{}

	_, err := s.applicationsWithJob().
		Where("a.job_id = ?", jobID).
		OrderDesc("a.applied_at").
		OrderDesc("a.id").
		LoadContext(ctx, &apps)

	if err != nil {
		s.logger.Error("failed to list applications by job",
			zap.Int64("job_id", jobID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("list applications by job: %w", err)
	}

	return apps, nil
}

func (s *Store) UpdateApplicationStatus(ctx context.Context, appID int64, status string) error {
	result, err := s.sess.
		Update("applications").
		Set("status", status).
		Where("id = ?", appID).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to update application status",
			zap.Int64("application_id", appID),
			zap.String("status", status),
			zap.Error(err),
		)
		return fmt.Errorf("update application status: %w", err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return fmt.Errorf("update application status: %w", storage.ErrNotFound)
	}

	s.logger.Info("application status updated",
		zap.Int64("application_id", appID),
		zap.String("status", status),
	)

	return nil
}
