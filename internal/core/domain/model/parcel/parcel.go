package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltracking/internal/core/domain/model/kernel"
	"parceltracking/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created through
	// NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrHistoryIsRequired is returned when restoring a parcel without any audit entry.
	ErrHistoryIsRequired = errs.NewValueIsRequiredError("history")
)

// Details holds the descriptive, non-lifecycle fields of a parcel.
type Details struct {
	Sender      string
	Recipient   string
	Contents    string
	Origin      string
	Destination string
}

// Parcel is the aggregate root of a shipment travelling from Earth to Mars.
//
// Parcel follows these invariants:
//   - Must have a valid identifier, barcode, delivery service and schedule
//   - Starts in Created with a single Created audit entry
//   - Status changes only through ApplyTransition with an accepted decision
//   - Every accepted change appends exactly one audit entry
//
// Concurrent updates of the same parcel are not coordinated here; the
// storage layer owns that.
type Parcel struct {
	id              kernel.UUID
	barcode         kernel.Barcode
	details         Details
	deliveryService DeliveryService
	schedule        Schedule
	status          Status
	history         History
	lastUpdated     time.Time

	isConstructed bool
}

// NewParcel creates a parcel in Created status with schedule attached and a
// history holding the Created entry stamped with now.
//
// Parameters:
//   - id: storage identifier
//   - barcode: public identifier (RMARS format)
//   - details: sender, recipient, contents, origin, destination
//   - service: delivery tier the schedule was computed for
//   - schedule: launch plan from services.ScheduleCalculator
//   - now: the instant of creation, read once from the clock
//
// Returns:
//   - *Parcel on success
//   - the joined validation errors of every invalid argument
func NewParcel(
	id kernel.UUID,
	barcode kernel.Barcode,
	details Details,
	service DeliveryService,
	schedule Schedule,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		details:       details,
		status:        Created,
		history:       AppendHistory(nil, Created, now),
		lastUpdated:   now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setBarcode(barcode),
		p.setDeliveryService(service),
		p.setSchedule(schedule),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel rebuilds a parcel from persisted state. Stray time-of-day
// components of the schedule dates are dropped by NewSchedule.
func RestoreParcel(
	id kernel.UUID,
	barcode kernel.Barcode,
	details Details,
	service DeliveryService,
	schedule Schedule,
	status Status,
	history History,
	lastUpdated time.Time,
) (*Parcel, error) {
	p := &Parcel{
		details:       details,
		lastUpdated:   lastUpdated.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setBarcode(barcode),
		p.setDeliveryService(service),
		p.setSchedule(schedule),
		p.setStatus(status),
		p.setHistory(history),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the parcel was created through NewParcel or RestoreParcel.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// ID returns the storage identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Barcode returns the public identifier.
func (p *Parcel) Barcode() kernel.Barcode {
	return p.barcode
}

// Details returns sender, recipient, contents, origin and destination.
func (p *Parcel) Details() Details {
	return p.details
}

// DeliveryService returns the tier chosen at creation.
func (p *Parcel) DeliveryService() DeliveryService {
	return p.deliveryService
}

// Schedule returns the launch plan.
func (p *Parcel) Schedule() Schedule {
	return p.schedule
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// History returns a copy of the audit trail.
func (p *Parcel) History() History {
	h := make(History, len(p.history))
	copy(h, p.history)
	return h
}

// LastUpdated returns the instant of the last change (UTC).
func (p *Parcel) LastUpdated() time.Time {
	return p.lastUpdated
}

// Snapshot returns the view the transition rules are evaluated against.
func (p *Parcel) Snapshot() Snapshot {
	return Snapshot{
		Status:               p.status,
		LaunchDate:           p.schedule.LaunchDate(),
		EstimatedArrivalDate: p.schedule.EstimatedArrivalDate(),
	}
}

// ApplyTransition moves the parcel to decision.NewStatus and appends an audit
// entry stamped with now.
//
// Returns:
//   - TransitionRejectedError carrying decision.Reason when the decision is not valid
//   - ValueIsInvalidError when an accepted decision names an invalid status
//
// Example:
//
//	decision := validator.ValidateStatus(p.Snapshot(), "LandedOnMars", now)
//	if err := p.ApplyTransition(decision, now); err != nil {
//	    return err
//	}
func (p *Parcel) ApplyTransition(decision StatusDecision, now time.Time) error {
	if !decision.Valid {
		return errs.NewTransitionRejectedError(decision.Reason)
	}
	if err := decision.NewStatus.Validate(); err != nil {
		return err
	}

	p.status = decision.NewStatus
	p.history = AppendHistory(p.history, decision.NewStatus, now)
	p.lastUpdated = now.UTC()
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	p.barcode = barcode
	return nil
}

func (p *Parcel) setDeliveryService(service DeliveryService) error {
	if err := service.Validate(); err != nil {
		return err
	}
	p.deliveryService = service
	return nil
}

func (p *Parcel) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	p.schedule = schedule
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Parcel) setHistory(history History) error {
	if len(history) == 0 {
		return ErrHistoryIsRequired
	}
	for i, entry := range history {
		if err := entry.Status().Validate(); err != nil {
			return fmt.Errorf("history entry %d: %w", i, err)
		}
	}
	p.history = make(History, len(history))
	copy(p.history, history)
	return nil
}
