package queries

import (
	"context"
	"time"

	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/core/ports"

	"gorm.io/gorm"
)

// GetParcelsAwaitingTransitionQueryHandler reads the transition backlog.
//
// Dates are stored without time of day, so "launchDate <= now" reduces to a
// comparison with now's UTC calendar date.
type GetParcelsAwaitingTransitionQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

// NewGetParcelsAwaitingTransitionQueryHandler creates the backlog handler.
func NewGetParcelsAwaitingTransitionQueryHandler(
	db *gorm.DB,
	clock ports.Clock,
) GetParcelsAwaitingTransitionQueryHandler {
	return GetParcelsAwaitingTransitionQueryHandler{db: db, clock: clock}
}

type awaitingRow struct {
	Barcode              string
	Status               string
	LaunchDate           time.Time
	EstimatedArrivalDate time.Time
}

// Handle returns the backlog ordered by barcode.
func (h GetParcelsAwaitingTransitionQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsAwaitingTransitionQuery,
) ([]GetParcelsAwaitingTransitionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := parcel.FormatDate(h.clock.Now())

	var rows []awaitingRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			barcode,
			status,
			launch_date,
			estimated_arrival_date
		FROM parcels
		WHERE (status = ? AND launch_date <= ?::date)
		   OR (status = ? AND estimated_arrival_date <= ?::date)
		ORDER BY barcode
	`, parcel.Created.String(), today, parcel.OnRocketToMars.String(), today).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]GetParcelsAwaitingTransitionQueryResponse, 0, len(rows))
	for _, row := range rows {
		status, err := scanStatus(row.Status)
		if err != nil {
			return nil, err
		}
		result = append(result, GetParcelsAwaitingTransitionQueryResponse{
			Barcode:              row.Barcode,
			Status:               status,
			LaunchDate:           parcel.TruncateToDate(row.LaunchDate),
			EstimatedArrivalDate: parcel.TruncateToDate(row.EstimatedArrivalDate),
		})
	}

	return result, nil
}
