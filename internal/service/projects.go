package service

import (
	"context"

	"skillport-api/internal/apperr"
	"skillport-api/internal/models"
)

const maxProjectDescription = 1000

type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, apperr.Server("Failed to load projects", err)
	}
	return projects, nil
}

func (s *ProjectService) ListByUser(ctx context.Context, userID int64) ([]models.Project, error) {
	projects, err := s.repo.ListProjectsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Server("Failed to load projects", err)
	}
	return projects, nil
}

func (s *ProjectService) Create(ctx context.Context, project models.Project) (*models.Project, error) {
	if err := checkOwner(project.UserID); err != nil {
		return nil, err
	}
	if len([]rune(project.Description)) > maxProjectDescription {
		return nil, apperr.Validation("Description must be at most 1000 characters")
	}
	project.ID = 0

	if err := s.repo.CreateProject(ctx, &project); err != nil {
		return nil, createError("Failed to create project", err)
	}
	return &project, nil
}

func (s *ProjectService) Delete(ctx context.Context, projectID int64) error {
	if err := s.repo.DeleteProject(ctx, projectID); err != nil {
		return apperr.Server("Failed to delete project", err)
	}
	return nil
}
