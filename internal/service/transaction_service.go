package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/odemir/networth-tracker-backend/internal/api/request"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/repository"
	"github.com/odemir/networth-tracker-backend/internal/valuation"
)

// TransactionService records buy and sell events and keeps the asset
// position consistent with them. Recording runs inside a single
// database transaction: the quantity check and the position update are
// atomic, so two concurrent sells against one asset cannot both pass
// the check.
type TransactionService struct {
	db              *sql.DB
	transactionRepo *repository.TransactionRepository
	assetRepo       *repository.AssetRepository
}

// NewTransactionService creates a new TransactionService with the provided dependencies.
func NewTransactionService(
	db *sql.DB,
	transactionRepo *repository.TransactionRepository,
	assetRepo *repository.AssetRepository,
) *TransactionService {
	return &TransactionService{
		db:              db,
		transactionRepo: transactionRepo,
		assetRepo:       assetRepo,
	}
}

// RecordResult is returned by RecordTransaction: the appended
// transaction plus the asset as it stands afterwards. Asset is nil
// when a sale closed the position.
type RecordResult struct {
	Transaction *model.Transaction `json:"transaction"`
	Asset       *model.Asset       `json:"asset,omitempty"`
}

// GetTransactions retrieves the user's transactions, newest first.
func (s *TransactionService) GetTransactions(userID string, filter model.TransactionFilter) ([]model.Transaction, error) {
	return s.transactionRepo.ListByUser(userID, filter)
}

// GetTransaction retrieves a single transaction owned by the user.
func (s *TransactionService) GetTransaction(userID, transactionID string) (model.Transaction, error) {
	return s.transactionRepo.GetByID(userID, transactionID)
}

// RecordTransaction appends a buy or sell event against an asset.
//
// A buy increases the position and re-blends the purchase price to the
// weighted average of the old position and the new lot. A sell checks
// the held quantity, realizes P&L against the blended purchase price,
// and decrements; a sale that brings the quantity to exactly zero
// removes the asset (the transaction row keeps its denormalized
// name/type and survives).
func (s *TransactionService) RecordTransaction(ctx context.Context, userID string, req request.RecordTransactionRequest) (RecordResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	assetRepo := s.assetRepo.WithTx(tx)
	transactionRepo := s.transactionRepo.WithTx(tx)

	asset, err := assetRepo.GetByID(userID, req.AssetID)
	if err != nil {
		return RecordResult{}, err
	}

	record := &model.Transaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		AssetID:     &asset.ID,
		Kind:        model.TransactionKind(req.Kind),
		AssetName:   asset.Name,
		AssetType:   asset.Type,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		TotalAmount: req.Quantity.Mul(req.UnitPrice),
		Currency:    asset.Currency,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	result := RecordResult{Transaction: record}

	switch record.Kind {
	case model.TransactionBuy:
		newQuantity := asset.Quantity.Add(req.Quantity)
		blended := asset.Quantity.Mul(asset.PurchasePrice).
			Add(req.Quantity.Mul(req.UnitPrice)).
			Div(newQuantity)

		if err := assetRepo.UpdatePosition(ctx, userID, asset.ID, newQuantity, blended); err != nil {
			return RecordResult{}, err
		}

		asset.Quantity = newQuantity
		asset.PurchasePrice = blended
		result.Asset = &asset

	case model.TransactionSell:
		sale, err := valuation.RecordSale(asset, req.Quantity, req.UnitPrice)
		if err != nil {
			return RecordResult{}, err
		}

		record.RealizedPnL = sale.RealizedPnL

		if sale.RemainingQuantity.IsZero() {
			if err := assetRepo.Delete(ctx, userID, asset.ID); err != nil {
				return RecordResult{}, err
			}
			record.AssetID = nil
		} else {
			if err := assetRepo.UpdatePosition(ctx, userID, asset.ID, sale.RemainingQuantity, asset.PurchasePrice); err != nil {
				return RecordResult{}, err
			}
			asset.Quantity = sale.RemainingQuantity
			result.Asset = &asset
		}

	default:
		return RecordResult{}, fmt.Errorf("unknown transaction kind: %s", record.Kind)
	}

	if err := transactionRepo.Insert(ctx, record); err != nil {
		return RecordResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecordResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}
