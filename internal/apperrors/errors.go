package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAssetNotFound indicates that an asset with the given ID does not exist for the user.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist for the user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrLiabilityNotFound indicates that a liability with the given ID does not exist for the user.
	ErrLiabilityNotFound = errors.New("liability not found")

	// ErrSnapshotNotFound indicates that no performance snapshot exists for the requested month.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrSymbolNotFound indicates that a symbol lookup returned no results.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInsufficientQuantity indicates that a sell cannot be completed
	// because the asset does not hold enough quantity.
	ErrInsufficientQuantity = errors.New("insufficient quantity for sale")

	// ErrSnapshotMonthClosed indicates a snapshot write for a month that
	// has already closed. Only the current month is overwritable.
	ErrSnapshotMonthClosed = errors.New("snapshot month is closed")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrMissingUserID indicates that the request carries no user identity.
	ErrMissingUserID = errors.New("user ID is required")

	// ErrInvalidMonth indicates a month parameter that is not YYYY-MM or lies in the future.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidMarket indicates an unknown reference data market.
	ErrInvalidMarket = errors.New("invalid market")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveAssets       = errors.New("failed to retrieve assets")
	ErrFailedToRetrieveAsset        = errors.New("failed to retrieve asset")
	ErrFailedToRetrieveSummary      = errors.New("failed to retrieve portfolio summary")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToRetrieveLiabilities  = errors.New("failed to retrieve liabilities")
	ErrFailedToRetrieveSeries       = errors.New("failed to retrieve performance series")
	ErrFailedToComputeSnapshot      = errors.New("failed to compute snapshot")
	ErrFailedToRetrieveSymbol       = errors.New("failed to retrieve symbol")
	ErrFailedToImportSymbols        = errors.New("failed to import reference symbols")
)
