package postgres

import (
	"context"
	"fmt"

	"skillport-api/internal/models"

	"go.uber.org/zap"
)

func (s *Store) CreateCertification(ctx context.Context, cert *models.Certification) error {
	// issue_date goes through Date.Value so a zero date is stored as NULL
	err := s.sess.
		InsertInto("certifications").
		Columns("user_id", "name", "issuer", "issue_date", "credential_url").
		Values(cert.UserID, cert.Name, cert.Issuer, cert.IssueDate, cert.CredentialURL).
		Returning("id").
		LoadContext(ctx, &cert.ID)

	if err != nil {
		s.logger.Error("failed to create certification",
			zap.Int64("user_id", cert.UserID),
			zap.Error(err),
		)
		return fmt.Errorf("create certification: %w", classify(err))
	}

	s.logger.Info("certification created",
		zap.Int64("certification_id", cert.ID),
		zap.Int64("user_id", cert.UserID),
	)

	return nil
}

func (s *Store) ListCertifications(ctx context.Context) ([]models.Certification, error) {
	certs := []models.Certification{}

	_, err := s.sess.
		Select("*").
		From("certifications").
		OrderBy("id").
		LoadContext(ctx, &certs)

	if err != nil {
		s.logger.Error("failed to list certifications", zap.Error(err))
		return nil, fmt.Errorf("list certifications: %w", err)
	}

	return certs, nil
}

func (s *Store) ListCertificationsByUser(ctx context.Context, userID int64) ([]models.Certification, error) {
	certs := []models.Certification{}

	_, err := s.sess.
		Select("*").
		From("certifications").
		Where("user_id = ?", userID).
		OrderBy("id").
		LoadContext(ctx, &certs)

	if err != nil {
		s.logger.Error("failed to list certifications by user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("list certifications by user: %w", err)
	}

	return certs, nil
}

func (s *Store) DeleteCertification(ctx context.Context, certID int64) error {
	result, err := s.sess.
		DeleteFrom("certifications").
		Where("id = ?", certID).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to delete certification",
			zap.Int64("certification_id", certID),
			zap.Error(err),
		)
		return fmt.Errorf("delete certification: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()

	s.logger.Info("certification deleted",
		zap.Int64("certification_id", certID),
		zap.Int64("count", rowsAffected),
	)

	return nil
}
