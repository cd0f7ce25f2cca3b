package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"parceltracking/internal/core/domain/services"
	"parceltracking/internal/core/ports"
	"parceltracking/internal/pkg/errs"
)

// ErrParcelUpdateFailed is returned when an accepted transition could not be
// persisted. The cause is logged with the barcode and wrapped.
var ErrParcelUpdateFailed = errors.New("parcel status update failed")

// UpdateParcelStatusCommandHandler validates and applies status transitions.
//
// The parcel row is locked for the duration of the transaction, so two
// concurrent updates of the same parcel are evaluated one after the other
// and the second sees the status written by the first.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404
//	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrTransitionRejected):
//	    // 400 with err.Error()
//	case errors.Is(err, ErrParcelUpdateFailed):
//	    // 500
//	}
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	validator  services.TransitionValidator
	clock      ports.Clock
	recorder   TransitionRecorder
	logger     *slog.Logger
}

// NewUpdateParcelStatusCommandHandler creates a handler for status updates.
func NewUpdateParcelStatusCommandHandler(
	uowFactory ParcelUoWFactory,
	validator services.TransitionValidator,
	clock ports.Clock,
	recorder TransitionRecorder,
	logger *slog.Logger,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		clock:      clock,
		recorder:   recorder,
		logger:     logger.With("component", "update_parcel_status_handler"),
	}
}

// Handle loads the parcel, validates the request against it at the current
// instant and persists the new status with its audit entry.
//
// Returns:
//   - ObjectNotFoundError when no parcel carries the barcode
//   - ValueIsRequiredError when newStatus is empty
//   - TransitionRejectedError carrying the validator's reason verbatim
//   - ErrParcelUpdateFailed when persisting fails
func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	p, err := repo.GetForUpdate(ctx, cmd.Barcode())
	if err != nil {
		return err
	}

	if cmd.NewStatus() == "" {
		return errs.NewValueIsRequiredError("newStatus")
	}

	decision := h.validator.ValidateStatus(p.Snapshot(), cmd.NewStatus(), now)
	h.recorder.TransitionDecided(p.Status().String(), decision.NewStatus.String(), decision.Valid)

	if err = p.ApplyTransition(decision, now); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return h.updateFailed(ctx, cmd, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return h.updateFailed(ctx, cmd, err)
	}

	return nil
}

func (h UpdateParcelStatusCommandHandler) updateFailed(ctx context.Context, cmd UpdateParcelStatusCommand, err error) error {
	h.logger.ErrorContext(ctx, "Parcel status update failed",
		"barcode", cmd.Barcode().String(),
		"error", err,
	)
	return fmt.Errorf("%w: %w", ErrParcelUpdateFailed, err)
}
