package parcel

import (
	"errors"
	"math"
	"time"

	"parceltracking/internal/pkg/errs"
	"parceltracking/internal/pkg/guard"
)

// ErrScheduleIsNotConstructed is returned when a Schedule was not built by NewSchedule.
var ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule constructor")

// Schedule is the launch plan stamped on a parcel at creation. It never
// changes afterwards.
//
// Invariants:
//   - launchDate and estimatedArrivalDate are midnight UTC
//   - etaDays >= 0
//   - estimatedArrivalDate == launchDate + etaDays
type Schedule struct {
	launchDate           time.Time
	etaDays              int
	estimatedArrivalDate time.Time

	guard guard.ConstructorGuard
}

// NewSchedule truncates launchDate to its calendar date and derives the
// estimated arrival date from it.
//
// Example:
//
//	launch := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
//	s, _ := parcel.NewSchedule(launch, 180)
//	s.EstimatedArrivalDate() // 2026-03-30
func NewSchedule(launchDate time.Time, etaDays int) (Schedule, error) {
	if launchDate.IsZero() {
		return Schedule{}, errs.NewValueIsRequiredError("launchDate")
	}
	if etaDays < 0 {
		return Schedule{}, errs.NewValueIsOutOfRangeError("etaDays", etaDays, 0, math.MaxInt32)
	}

	launch := TruncateToDate(launchDate)
	return Schedule{
		launchDate:           launch,
		etaDays:              etaDays,
		estimatedArrivalDate: launch.AddDate(0, 0, etaDays),
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the schedule was created through NewSchedule.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// LaunchDate returns the launch date (midnight UTC).
func (s Schedule) LaunchDate() time.Time {
	return s.launchDate
}

// EtaDays returns the travel time in days.
func (s Schedule) EtaDays() int {
	return s.etaDays
}

// EstimatedArrivalDate returns launchDate + etaDays (midnight UTC).
func (s Schedule) EstimatedArrivalDate() time.Time {
	return s.estimatedArrivalDate
}
