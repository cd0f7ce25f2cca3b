package queries

import (
	"context"
	"fmt"
	"time"

	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler reads a parcel and its history from the database.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for parcel lookups.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

type parcelRow struct {
	ID                   uuid.UUID
	Barcode              string
	Sender               string
	Recipient            string
	Contents             string
	DeliveryService      string
	Status               string
	LaunchDate           time.Time
	EtaDays              int
	EstimatedArrivalDate time.Time
	Origin               string
	Destination          string
	LastUpdated          time.Time
}

type historyRow struct {
	Status    string
	EnteredOn string
}

// Handle returns the parcel carrying the query's barcode, or
// ObjectNotFoundError.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []parcelRow
	if err := db.Raw(`
		SELECT
			id,
			barcode,
			sender,
			recipient,
			contents,
			delivery_service,
			status,
			launch_date,
			eta_days,
			estimated_arrival_date,
			origin,
			destination,
			last_updated
		FROM parcels
		WHERE barcode = ?
	`, query.Barcode().String()).Scan(&rows).Error; err != nil {
		return GetParcelQueryResponse{}, err
	}

	if len(rows) == 0 {
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("barcode", query.Barcode().String())
	}
	row := rows[0]

	status, err := scanStatus(row.Status)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	var history []historyRow
	if err = db.Raw(`
		SELECT status, entered_on
		FROM parcel_history
		WHERE parcel_id = ?
		ORDER BY position
	`, row.ID).Scan(&history).Error; err != nil {
		return GetParcelQueryResponse{}, err
	}

	items := make([]HistoryItem, 0, len(history))
	for _, entry := range history {
		entryStatus, statusErr := scanStatus(entry.Status)
		if statusErr != nil {
			return GetParcelQueryResponse{}, statusErr
		}
		items = append(items, HistoryItem{Status: entryStatus, Timestamp: entry.EnteredOn})
	}

	return GetParcelQueryResponse{
		Barcode:              row.Barcode,
		Sender:               row.Sender,
		Recipient:            row.Recipient,
		Contents:             row.Contents,
		DeliveryService:      row.DeliveryService,
		Status:               status,
		LaunchDate:           parcel.TruncateToDate(row.LaunchDate),
		EtaDays:              row.EtaDays,
		EstimatedArrivalDate: parcel.TruncateToDate(row.EstimatedArrivalDate),
		Origin:               row.Origin,
		Destination:          row.Destination,
		LastUpdated:          row.LastUpdated.UTC(),
		History:              items,
	}, nil
}

func scanStatus(s string) (parcel.Status, error) {
	status, ok := parcel.ParseStatus(s)
	if !ok {
		return parcel.Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("'%s' is not a stored status", s),
		)
	}
	return status, nil
}
