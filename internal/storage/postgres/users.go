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

var userColumns = []string{
	"first_name", "last_name", "email", "password", "role", "bio", "location",
	"github", "linkedin", "website",
	"language", "dark_mode", "notif_messages", "notif_applications", "notif_marketing",
	"created_at",
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	err := s.sess.
		InsertInto("users").
		Columns(userColumns...).
		Record(user).
		Returning("id").
		LoadContext(ctx, &user.ID)

	if err != nil {
		s.logger.Error("failed to create user",
			zap.String("email", user.Email),
			zap.Error(err),
		)
		return fmt.Errorf("create user: %w", classify(err))
	}

	s.logger.Info("user created",
		zap.Int64("user_id", user.ID),
		zap.String("role", user.Role),
	)

	return nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	err := s.sess.
		Select("*").
		From("users").
		Where("id = ?", userID).
		LoadOneContext(ctx, &user)

	if err == dbr.ErrNotFound {
		return nil, nil
	}

	if err != nil {
		s.logger.Error("failed to get user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail expects an already normalised email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := s.sess.
		Select("*").
		From("users").
		Where("email = ?", email).
		LoadOneContext(ctx, &user)

	if err == dbr.ErrNotFound {
		return nil, nil
	}

	if err != nil {
		s.logger.Error("failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}

	_, err := s.sess.
		Select("*").
		From("users").
		OrderBy("id").
		LoadContext(ctx, &users)

	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// ListUsersByRole matches role case-insensitively.
func (s *Store) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	users := []models.User{}

	_, err := s.sess.
		Select("*").
		From("users").
		Where("LOWER(role) = LOWER(?)", role).
		OrderBy("id").
		LoadContext(ctx, &users)

	if err != nil {
		s.logger.Error("failed to list users by role",
			zap.String("role", role),
			zap.Error(err),
		)
		return nil, fmt.Errorf("list users by role: %w", err)
	}

	return users, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	result, err := s.sess.
		Update("users").
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("email", user.Email).
		Set("password", user.Password).
		Set("role", user.Role).
		Set("bio", user.Bio).
		Set("location", user.Location).
		Set("github", user.Github).
		Set("linkedin", user.Linkedin).
		Set("website", user.Website).
		Set("language", user.Language).
		Set("dark_mode", user.DarkMode).
		Set("notif_messages", user.NotifMessages).
		Set("notif_applications", user.NotifApplications).
		Set("notif_marketing", user.NotifMarketing).
		Where("id = ?", user.ID).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to update user",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return fmt.Errorf("update user: %w", classify(err))
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return fmt.Errorf("update user: %w", storage.ErrNotFound)
	}

	s.logger.Info("user updated", zap.Int64("user_id", user.ID))
	return nil
}

// DeleteUser removes the user together with the skills, projects and
// certifications it owns. It reports whether the user existed.
func (s *Store) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	tx, err := s.BeginTx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.RollbackUnlessCommitted()

	for _, table := range []string{"skills", "projects", "certifications"} {
		result, err := tx.
			DeleteFrom(table).
			Where("user_id = ?", userID).
			ExecContext(ctx)
		if err != nil {
			s.logger.Error("failed to delete owned rows",
				zap.Int64("user_id", userID),
				zap.String("table", table),
				zap.Error(err),
			)
			return false, fmt.Errorf("delete user %s: %w", table, err)
		}

		if rowsAffected, _ := result.RowsAffected(); rowsAffected > 0 {
			s.logger.Debug("owned rows deleted",
				zap.Int64("user_id", userID),
				zap.String("table", table),
				zap.Int64("count", rowsAffected),
			)
		}
	}

	result, err := tx.
		DeleteFrom("users").
		Where("id = ?", userID).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to delete user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return false, fmt.Errorf("delete user: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete user: %w", err)
	}

	s.logger.Info("user deleted", zap.Int64("user_id", userID))
	return true, nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var count int

	err := s.sess.
		Select("COUNT(*)").
		From("users").
		LoadOneContext(ctx, &count)

	if err != nil {
		s.logger.Error("failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}
