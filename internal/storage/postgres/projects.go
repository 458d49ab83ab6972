package postgres

import (
	"context"
	"fmt"

	"skillport-api/internal/models"

	"go.uber.org/zap"
)

var projectColumns = []string{
	"user_id", "title", "description", "link", "github", "tags",
}

func (s *Store) CreateProject(ctx context.Context, project *models.Project) error {
	err := s.sess.
		InsertInto("projects").
		Columns(projectColumns...).
		Record(project).
		Returning("id").
		LoadContext(ctx, &project.ID)

	if err != nil {
		s.logger.Error("failed to create project",
			zap.Int64("user_id", project.UserID),
			zap.Error(err),
		)
		return fmt.Errorf("create project: %w", classify(err))
	}

	s.logger.Info("project created",
		zap.Int64("project_id", project.ID),
		zap.Int64("user_id", project.UserID),
	)

	return nil
}

func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}

	_, err := s.sess.
		Select("*").
		From("projects").
		OrderBy("id").
		LoadContext(ctx, &projects)

	if err != nil {
		s.logger.Error("failed to list projects", zap.Error(err))
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (s *Store) ListProjectsByUser(ctx context.Context, userID int64) ([]models.Project, error) {
	projects := []models.Project{}

	_, err := s.sess.
		Select("*").
		From("projects").
		Where("user_id = ?", userID).
		OrderBy("id").
		LoadContext(ctx, &projects)

	if err != nil {
		s.logger.Error("failed to list projects by user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("list projects by user: %w", err)
	}

	return projects, nil
}

func (s *Store) DeleteProject(ctx context.Context, projectID int64) error {
	result, err := s.sess.
		DeleteFrom("projects").
		Where("id = ?", projectID).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to delete project",
			zap.Int64("project_id", projectID),
			zap.Error(err),
		)
		return fmt.Errorf("delete project: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()

	s.logger.Info("project deleted",
		zap.Int64("project_id", projectID),
		zap.Int64("count", rowsAffected),
	)

	return nil
}
