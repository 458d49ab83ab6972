package service

import (
	"context"

	"skillport-api/internal/apperr"
	"skillport-api/internal/models"
)

type CertificationService struct {
	repo CertificationRepository
}

func NewCertificationService(repo CertificationRepository) *CertificationService {
	return &CertificationService{repo: repo}
}

func (s *CertificationService) List(ctx context.Context) ([]models.Certification, error) {
	certs, err := s.repo.ListCertifications(ctx)
	if err != nil {
		return nil, apperr.Server("Failed to load certifications", err)
	}
	return certs, nil
}

func (s *CertificationService) ListByUser(ctx context.Context, userID int64) ([]models.Certification, error) {
	certs, err := s.repo.ListCertificationsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Server("Failed to load certifications", err)
	}
	return certs, nil
}

func (s *CertificationService) Create(ctx context.Context, cert models.Certification) (*models.Certification, error) {
	if err := checkOwner(cert.UserID); err != nil {
		return nil, err
	}
	cert.ID = 0

	if err := s.repo.CreateCertification(ctx, &cert); err != nil {
		return nil, createError("Failed to create certification", err)
	}
	return &cert, nil
}

func (s *CertificationService) Delete(ctx context.Context, certID int64) error {
	if err := s.repo.DeleteCertification(ctx, certID); err != nil {
		return apperr.Server("Failed to delete certification", err)
	}
	return nil
}
