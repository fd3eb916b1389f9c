package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/odemir/networth-tracker-backend/internal/api/request"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/repository"
)

// LiabilityService handles liability-related business logic operations.
type LiabilityService struct {
	liabilityRepo *repository.LiabilityRepository
}

// NewLiabilityService creates a new LiabilityService with the provided repository dependency.
func NewLiabilityService(liabilityRepo *repository.LiabilityRepository) *LiabilityService {
	return &LiabilityService{liabilityRepo: liabilityRepo}
}

// GetLiabilities retrieves all liabilities tracked by the user.
func (s *LiabilityService) GetLiabilities(userID string) ([]model.Liability, error) {
	return s.liabilityRepo.ListByUser(userID)
}

// CreateLiability stores a new liability for the user from a validated request.
func (s *LiabilityService) CreateLiability(ctx context.Context, userID string, req request.CreateLiabilityRequest) (*model.Liability, error) {
	liability := &model.Liability{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      req.Name,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Notes:     req.Notes,
		CreatedAt: time.Now().UTC(),
	}

	if liability.Currency == "" {
		liability.Currency = model.DefaultCurrency
	}

	if err := s.liabilityRepo.Insert(ctx, liability); err != nil {
		return nil, fmt.Errorf("failed to create liability: %w", err)
	}

	return liability, nil
}

// UpdateLiability applies the provided fields to an existing liability.
func (s *LiabilityService) UpdateLiability(ctx context.Context, userID, liabilityID string, req request.UpdateLiabilityRequest) (model.Liability, error) {
	liability, err := s.liabilityRepo.GetByID(userID, liabilityID)
	if err != nil {
		return model.Liability{}, err
	}

	if req.Name != nil {
		liability.Name = *req.Name
	}
	if req.Amount != nil {
		liability.Amount = *req.Amount
	}
	if req.Currency != nil {
		liability.Currency = *req.Currency
	}
	if req.Notes != nil {
		liability.Notes = *req.Notes
	}

	if err := s.liabilityRepo.Update(ctx, &liability); err != nil {
		return model.Liability{}, fmt.Errorf("failed to update liability: %w", err)
	}

	return liability, nil
}

// DeleteLiability removes a liability owned by the user.
func (s *LiabilityService) DeleteLiability(ctx context.Context, userID, liabilityID string) error {
	return s.liabilityRepo.Delete(ctx, userID, liabilityID)
}
