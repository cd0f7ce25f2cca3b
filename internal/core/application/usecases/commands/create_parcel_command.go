package commands

import (
	"errors"

	"parceltracking/internal/core/domain/model/kernel"
	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a parcel for the
// Earth to Mars route.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand("RMARS1234567890123456789M", "Alice", "Bob", "Tea", "Express")
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	p, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	barcode         kernel.Barcode
	sender          string
	recipient       string
	contents        string
	deliveryService parcel.DeliveryService

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand parses barcode and deliveryService. The delivery
// service must be exactly "Standard" or "Express". Every invalid field is
// reported in the joined error.
func NewCreateParcelCommand(
	barcode, sender, recipient, contents, deliveryService string,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		sender:    sender,
		recipient: recipient,
		contents:  contents,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBarcode(barcode),
		cmd.setDeliveryService(deliveryService),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// Barcode returns the public identifier of the new parcel.
func (c CreateParcelCommand) Barcode() kernel.Barcode {
	return c.barcode
}

// Sender returns the sender name.
func (c CreateParcelCommand) Sender() string {
	return c.sender
}

// Recipient returns the recipient name.
func (c CreateParcelCommand) Recipient() string {
	return c.recipient
}

// Contents returns the declared contents.
func (c CreateParcelCommand) Contents() string {
	return c.contents
}

// DeliveryService returns the requested tier.
func (c CreateParcelCommand) DeliveryService() parcel.DeliveryService {
	return c.deliveryService
}

func (c *CreateParcelCommand) setBarcode(barcode string) error {
	b, err := kernel.NewBarcode(barcode)
	if err != nil {
		return err
	}

	c.barcode = b
	return nil
}

func (c *CreateParcelCommand) setDeliveryService(deliveryService string) error {
	service, err := parcel.ParseDeliveryService(deliveryService)
	if err != nil {
		return err
	}

	c.deliveryService = service
	return nil
}
