package service

import (
	"context"

	"skillport-api/internal/apperr"
	"skillport-api/internal/models"
)

type SkillService struct {
	repo SkillRepository
}

func NewSkillService(repo SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) ListByUser(ctx context.Context, userID int64) ([]models.Skill, error) {
	skills, err := s.repo.ListSkillsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Server("Failed to load skills", err)
	}
	return skills, nil
}

func (s *SkillService) Create(ctx context.Context, skill models.Skill) (*models.Skill, error) {
	if err := checkOwner(skill.UserID); err != nil {
		return nil, err
	}
	skill.ID = 0

	if err := s.repo.CreateSkill(ctx, &skill); err != nil {
		return nil, createError("Failed to create skill", err)
	}
	return &skill, nil
}

func (s *SkillService) Delete(ctx context.Context, skillID int64) error {
	if err := s.repo.DeleteSkill(ctx, skillID); err != nil {
		return apperr.Server("Failed to delete skill", err)
	}
	return nil
}
