// Package parcelrepo persists parcel aggregates with GORM. A parcel is one
// row in "parcels" plus its ordered audit trail in "parcel_history".
package parcelrepo

import (
	"fmt"
	"time"

	"parceltracking/internal/core/domain/model/kernel"
	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Status and delivery service are stored by name.
type ParcelDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Barcode              string          `gorm:"type:varchar(25);not null;uniqueIndex"`
	Sender               string          `gorm:"type:varchar(255);not null"`
	Recipient            string          `gorm:"type:varchar(255);not null"`
	Contents             string          `gorm:"type:text;not null"`
	DeliveryService      string          `gorm:"type:varchar(16);not null"`
	Status               string          `gorm:"type:varchar(32);not null;index"`
	LaunchDate           time.Time       `gorm:"type:date;not null"`
	EtaDays              int             `gorm:"type:int;not null"`
	EstimatedArrivalDate time.Time       `gorm:"type:date;not null"`
	Origin               string          `gorm:"type:varchar(255);not null"`
	Destination          string          `gorm:"type:varchar(255);not null"`
	LastUpdated          time.Time       `gorm:"type:timestamptz;not null"`
	History              []AuditEntryDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "parcel_dtos".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// AuditEntryDTO is one audit trail entry. Position preserves the order of the
// trail, which is not recoverable from the day-precision timestamp alone.
type AuditEntryDTO struct {
	ParcelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	Status    string    `gorm:"type:varchar(32);not null"`
	EnteredOn string    `gorm:"type:varchar(10);not null"`
}

// TableName overrides GORM's default "audit_entry_dtos".
func (AuditEntryDTO) TableName() string {
	return "parcel_history"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	id := p.ID().Bytes()
	details := p.Details()
	schedule := p.Schedule()

	return ParcelDTO{
		ID:                   id,
		Barcode:              p.Barcode().String(),
		Sender:               details.Sender,
		Recipient:            details.Recipient,
		Contents:             details.Contents,
		DeliveryService:      p.DeliveryService().String(),
		Status:               p.Status().String(),
		LaunchDate:           schedule.LaunchDate(),
		EtaDays:              schedule.EtaDays(),
		EstimatedArrivalDate: schedule.EstimatedArrivalDate(),
		Origin:               details.Origin,
		Destination:          details.Destination,
		LastUpdated:          p.LastUpdated(),
		History:              historyFromDomain(id, p.History()),
	}
}

func historyFromDomain(parcelID uuid.UUID, history parcel.History) []AuditEntryDTO {
	dtos := make([]AuditEntryDTO, 0, len(history))
	for i, entry := range history {
		dtos = append(dtos, AuditEntryDTO{
			ParcelID:  parcelID,
			Position:  i,
			Status:    entry.Status().String(),
			EnteredOn: entry.Timestamp(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate. dto.History must already be in position order.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	barcode, err := kernel.NewBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}

	service, err := parcel.ParseDeliveryService(dto.DeliveryService)
	if err != nil {
		return nil, err
	}

	status, err := parseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	schedule, err := parcel.NewSchedule(dto.LaunchDate, dto.EtaDays)
	if err != nil {
		return nil, err
	}

	history := make(parcel.History, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		entryStatus, statusErr := parseStatus(entryDTO.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		entry, entryErr := parcel.RestoreAuditEntry(entryStatus, entryDTO.EnteredOn)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return parcel.RestoreParcel(
		id,
		barcode,
		parcel.Details{
			Sender:      dto.Sender,
			Recipient:   dto.Recipient,
			Contents:    dto.Contents,
			Origin:      dto.Origin,
			Destination: dto.Destination,
		},
		service,
		schedule,
		status,
		history,
		dto.LastUpdated,
	)
}

func parseStatus(s string) (parcel.Status, error) {
	status, ok := parcel.ParseStatus(s)
	if !ok {
		return parcel.Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("'%s' is not a stored status", s),
		)
	}
	return status, nil
}
