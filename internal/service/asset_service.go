package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/odemir/networth-tracker-backend/internal/api/request"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/repository"
	"github.com/odemir/networth-tracker-backend/internal/valuation"
)

// AssetService handles asset-related business logic operations.
type AssetService struct {
	assetRepo *repository.AssetRepository
}

// NewAssetService creates a new AssetService with the provided repository dependency.
func NewAssetService(assetRepo *repository.AssetRepository) *AssetService {
	return &AssetService{assetRepo: assetRepo}
}

// GetAssets retrieves all assets held by the user.
func (s *AssetService) GetAssets(userID string) ([]model.Asset, error) {
	return s.assetRepo.ListByUser(userID)
}

// GetAsset retrieves a single asset owned by the user.
func (s *AssetService) GetAsset(userID, assetID string) (model.Asset, error) {
	return s.assetRepo.GetByID(userID, assetID)
}

// GetSummary values the user's full portfolio on demand: totals,
// unrealized P&L and a per-type breakdown. Nothing is cached between
// calls; reads see the latest committed prices.
func (s *AssetService) GetSummary(userID string) (valuation.PortfolioValuation, error) {
	assets, err := s.assetRepo.ListByUser(userID)
	if err != nil {
		return valuation.PortfolioValuation{}, err
	}

	return valuation.ValuePortfolio(assets), nil
}

// CreateAsset stores a new asset for the user from a validated request.
func (s *AssetService) CreateAsset(ctx context.Context, userID string, req request.CreateAssetRequest) (*model.Asset, error) {
	asset := &model.Asset{
		ID:            uuid.New().String(),
		UserID:        userID,
		Name:          req.Name,
		Type:          model.AssetType(req.Type),
		Symbol:        req.Symbol,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		CurrentPrice:  req.CurrentPrice,
		Currency:      req.Currency,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	if asset.Currency == "" {
		asset.Currency = model.DefaultCurrency
	}

	if req.PurchaseDate != "" {
		d, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return nil, err
		}
		asset.PurchaseDate = &d
	}

	if err := s.assetRepo.Insert(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return asset, nil
}

// UpdateAsset applies the provided fields to an existing asset.
func (s *AssetService) UpdateAsset(ctx context.Context, userID, assetID string, req request.UpdateAssetRequest) (model.Asset, error) {
	asset, err := s.assetRepo.GetByID(userID, assetID)
	if err != nil {
		return model.Asset{}, err
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Type != nil {
		asset.Type = model.AssetType(*req.Type)
	}
	if req.Symbol != nil {
		asset.Symbol = *req.Symbol
	}
	if req.Quantity != nil {
		asset.Quantity = *req.Quantity
	}
	if req.PurchasePrice != nil {
		asset.PurchasePrice = *req.PurchasePrice
	}
	if req.CurrentPrice != nil {
		asset.CurrentPrice = *req.CurrentPrice
	}
	if req.Currency != nil {
		asset.Currency = *req.Currency
	}
	if req.PurchaseDate != nil {
		if *req.PurchaseDate == "" {
			asset.PurchaseDate = nil
		} else {
			d, err := time.Parse("2006-01-02", *req.PurchaseDate)
			if err != nil {
				return model.Asset{}, err
			}
			asset.PurchaseDate = &d
		}
	}
	if req.Notes != nil {
		asset.Notes = *req.Notes
	}

	if err := s.assetRepo.Update(ctx, &asset); err != nil {
		return model.Asset{}, fmt.Errorf("failed to update asset: %w", err)
	}

	return asset, nil
}

// UpdatePrice writes a refreshed current price onto the asset and
// returns the updated row.
func (s *AssetService) UpdatePrice(ctx context.Context, userID, assetID string, req request.UpdateAssetPriceRequest) (model.Asset, error) {
	if err := s.assetRepo.UpdatePrice(ctx, userID, assetID, req.CurrentPrice); err != nil {
		return model.Asset{}, err
	}

	return s.assetRepo.GetByID(userID, assetID)
}

// DeleteAsset removes the asset. Its transactions survive with the
// asset reference cleared.
func (s *AssetService) DeleteAsset(ctx context.Context, userID, assetID string) error {
	return s.assetRepo.Delete(ctx, userID, assetID)
}
