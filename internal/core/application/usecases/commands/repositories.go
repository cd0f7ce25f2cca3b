// Package commands contains business operations that modify parcel state.
// Every command follows the same shape: validate, open a transaction, load
// or build the aggregate, persist, commit.
package commands

import (
	"context"

	"parceltracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ParcelUoW manages transactions for parcel operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.ParcelRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}
)

// Metrics hooks. *metrics.Collector satisfies both.
type (
	// CreationRecorder counts created parcels.
	CreationRecorder interface {
		ParcelCreated(service string)
	}

	// TransitionRecorder counts validated status transition requests.
	TransitionRecorder interface {
		TransitionDecided(from, to string, accepted bool)
	}
)
