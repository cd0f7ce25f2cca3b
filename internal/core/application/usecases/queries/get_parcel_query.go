// Package queries contains read-only operations. Handlers read straight from
// the database and return flat response structs, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"parceltracking/internal/core/domain/model/kernel"
	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves one parcel with its audit trail.
//
// Example:
//
//	query, err := NewGetParcelQuery(barcode)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetParcelQuery struct {
	barcode kernel.Barcode

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a lookup by barcode.
func NewGetParcelQuery(barcode kernel.Barcode) (GetParcelQuery, error) {
	if err := barcode.Validate(); err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{barcode: barcode, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// Barcode returns the parcel to look up.
func (q GetParcelQuery) Barcode() kernel.Barcode {
	return q.barcode
}

// HistoryItem is one audit trail entry.
type HistoryItem struct {
	Status    parcel.Status
	Timestamp string
}

// GetParcelQueryResponse is the full parcel view. Dates are midnight UTC.
type GetParcelQueryResponse struct {
	Barcode              string
	Sender               string
	Recipient            string
	Contents             string
	DeliveryService      string
	Status               parcel.Status
	LaunchDate           time.Time
	EtaDays              int
	EstimatedArrivalDate time.Time
	Origin               string
	Destination          string
	LastUpdated          time.Time
	History              []HistoryItem
}
