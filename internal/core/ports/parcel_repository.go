package ports

import (
	"context"

	"parceltracking/internal/core/domain/model/kernel"
	"parceltracking/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates,
// including their audit history.
type ParcelRepository interface {
	// Add persists a new parcel with its history.
	// Returns ObjectAlreadyExistsError when the barcode is taken.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists status, lastUpdated and history of an existing parcel.
	// Returns ObjectNotFoundError when the parcel does not exist.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by barcode.
	// Returns ObjectNotFoundError when no parcel carries the barcode.
	Get(ctx context.Context, barcode kernel.Barcode) (*parcel.Parcel, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends. Concurrent status updates of the same parcel are
	// serialized by it.
	GetForUpdate(ctx context.Context, barcode kernel.Barcode) (*parcel.Parcel, error)

	// Exists reports whether a parcel carries the barcode.
	Exists(ctx context.Context, barcode kernel.Barcode) (bool, error)
}
