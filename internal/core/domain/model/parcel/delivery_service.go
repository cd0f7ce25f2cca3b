package parcel

import (
	"fmt"

	"parceltracking/internal/pkg/errs"
)

// DeliveryService is the delivery tier chosen at creation. It drives the
// launch date and the ETA of the parcel.
type DeliveryService int

const (
	// UnknownService is the zero value and is never valid.
	UnknownService DeliveryService = iota

	// Standard parcels ride the next Earth-Mars launch window.
	Standard

	// Express parcels launch on the first Wednesday of a month.
	Express
)

var deliveryServiceNames = map[DeliveryService]string{
	Standard: "Standard",
	Express:  "Express",
}

// ParseDeliveryService matches s exactly against "Standard" and "Express".
// Any other input yields an InvalidServiceError.
func ParseDeliveryService(s string) (DeliveryService, error) {
	for service, name := range deliveryServiceNames {
		if s == name {
			return service, nil
		}
	}
	return UnknownService, errs.NewInvalidServiceError(s)
}

// String returns the tier name, or "Unknown" for invalid values.
func (d DeliveryService) String() string {
	if name, ok := deliveryServiceNames[d]; ok {
		return name
	}
	return "Unknown"
}

// Validate returns an InvalidServiceError unless d is Standard or Express.
func (d DeliveryService) Validate() error {
	if _, ok := deliveryServiceNames[d]; !ok {
		return errs.NewInvalidServiceErrorWithCause(d.String(), fmt.Errorf("%d is not a known delivery service", d))
	}
	return nil
}
