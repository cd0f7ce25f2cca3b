package queries

import (
	"errors"
	"time"

	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/pkg/guard"
)

var ErrGetParcelsAwaitingTransitionQueryIsNotConstructed = errors.New(
	"GetParcelsAwaitingTransitionQuery must be created via NewGetParcelsAwaitingTransitionQuery constructor",
)

// GetParcelsAwaitingTransitionQuery lists parcels whose time gate has opened:
// Created parcels past their launch date and OnRocketToMars parcels past
// their estimated arrival date. These are the parcels an operator should
// move next.
type GetParcelsAwaitingTransitionQuery struct {
	guard guard.ConstructorGuard
}

// NewGetParcelsAwaitingTransitionQuery creates the backlog query.
func NewGetParcelsAwaitingTransitionQuery() GetParcelsAwaitingTransitionQuery {
	return GetParcelsAwaitingTransitionQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsAwaitingTransitionQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsAwaitingTransitionQueryIsNotConstructed)
}

// GetParcelsAwaitingTransitionQueryResponse is one parcel of the backlog.
type GetParcelsAwaitingTransitionQueryResponse struct {
	Barcode              string
	Status               parcel.Status
	LaunchDate           time.Time
	EstimatedArrivalDate time.Time
}
