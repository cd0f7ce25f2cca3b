package commands

import (
	"errors"

	"parceltracking/internal/core/domain/model/kernel"
	"parceltracking/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand asks to move a parcel to newStatus.
//
// newStatus is kept as the caller sent it. An empty value is accepted here
// and rejected by the handler once the parcel is known to exist, so an
// unknown barcode is always reported first.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	barcode   kernel.Barcode
	newStatus string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a status update request.
func NewUpdateParcelStatusCommand(barcode kernel.Barcode, newStatus string) (UpdateParcelStatusCommand, error) {
	if err := barcode.Validate(); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return UpdateParcelStatusCommand{
		barcode:   barcode,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// Barcode returns the parcel to update.
func (c UpdateParcelStatusCommand) Barcode() kernel.Barcode {
	return c.barcode
}

// NewStatus returns the requested status name as sent.
func (c UpdateParcelStatusCommand) NewStatus() string {
	return c.newStatus
}
