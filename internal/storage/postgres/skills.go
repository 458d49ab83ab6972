package postgres

import (
	"context"
	"fmt"

	"skillport-api/internal/models"

	"go.uber.org/zap"
)

var skillColumns = []string{
	"user_id", "name", "level", "category", "years_of_experience", "is_learning_path",
}

func (s *Store) CreateSkill(ctx context.Context, skill *models.Skill) error {
	err := s.sess.
		InsertInto("skills").
		Columns(skillColumns...).
		Record(skill).
		Returning("id").
		LoadContext(ctx, &skill.ID)

	if err != nil {
		s.logger.Error("failed to create skill",
			zap.Int64("user_id", skill.UserID),
			zap.String("name", skill.Name),
			zap.Error(err),
		)
		return fmt.Errorf("create skill: %w", classify(err))
	}

	s.logger.Info("skill created",
		zap.Int64("skill_id", skill.ID),
		zap.Int64("user_id", skill.UserID),
	)

	return nil
}

func (s *Store) ListSkillsByUser(ctx context.Context, userID int64) ([]models.Skill, error) {
	skills := []models.Skill{}

	_, err := s.sess.
		Select("*").
		From("skills").
		Where("user_id = ?", userID).
		OrderBy("id").
		LoadContext(ctx, &skills)

	if err != nil {
		s.logger.Error("failed to list skills by user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("list skills by user: %w", err)
	}

	return skills, nil
}

func (s *Store) DeleteSkill(ctx context.Context, skillID int64) error {
	result, err := s.sess.
		DeleteFrom("skills").
		Where("id = ?", skillID).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to delete skill",
			zap.Int64("skill_id", skillID),
			zap.Error(err),
		)
		return fmt.Errorf("delete skill: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()

	s.logger.Info("skill deleted",
		zap.Int64("skill_id", skillID),
		zap.Int64("count", rowsAffected),
	)

	return nil
}
