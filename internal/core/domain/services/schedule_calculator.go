package services

import (
	"time"

	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/pkg/errs"
)

const (
	// SynodicCycleMonths is the spacing of Earth-Mars launch windows.
	SynodicCycleMonths = 26

	// StandardEtaDays is the travel time of Standard parcels.
	StandardEtaDays = 180

	// ExpressEtaDays is the travel time of Express parcels.
	ExpressEtaDays = 90
)

// ScheduleCalculator derives the launch plan of a parcel from its delivery
// tier and the current instant. The only state it holds is the configured
// next Standard launch date.
type ScheduleCalculator struct {
	nextStandardLaunch time.Time
}

// NewScheduleCalculator creates a calculator for the configured next Standard
// launch window. The date is truncated to midnight UTC.
func NewScheduleCalculator(nextStandardLaunch time.Time) ScheduleCalculator {
	return ScheduleCalculator{nextStandardLaunch: parcel.TruncateToDate(nextStandardLaunch)}
}

// NextStandardLaunch returns the configured Standard launch date.
func (c ScheduleCalculator) NextStandardLaunch() time.Time {
	return c.nextStandardLaunch
}

// GetLaunchDate returns the launch date for service as seen at now.
//
// Standard: the configured date, unless it is strictly before now, in which
// case it is pushed back by one synodic cycle (26 months). The push happens
// once; a configured date more than one cycle stale still yields a past date.
//
// Express: the first Wednesday of now's month if it is not before now,
// otherwise the first Wednesday of the following month.
//
// Any other service fails with InvalidServiceError.
func (c ScheduleCalculator) GetLaunchDate(service parcel.DeliveryService, now time.Time) (time.Time, error) {
	now = now.UTC()

	switch service { //nolint:exhaustive // UnknownService falls through to the error
	case parcel.Standard:
		launch := c.nextStandardLaunch
		if launch.Before(now) {
			launch = addMonths(launch, SynodicCycleMonths)
		}
		return launch, nil
	case parcel.Express:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		if wednesday := firstWednesday(firstOfMonth); !wednesday.Before(now) {
			return wednesday, nil
		}
		return firstWednesday(firstOfMonth.AddDate(0, 1, 0)), nil
	default:
		return time.Time{}, errs.NewInvalidServiceError(service.String())
	}
}

// GetEtaDays returns the travel time in days: Standard 180, Express 90.
func (c ScheduleCalculator) GetEtaDays(service parcel.DeliveryService) (int, error) {
	switch service { //nolint:exhaustive // UnknownService falls through to the error
	case parcel.Standard:
		return StandardEtaDays, nil
	case parcel.Express:
		return ExpressEtaDays, nil
	default:
		return 0, errs.NewInvalidServiceError(service.String())
	}
}

// CalculateEstimatedArrivalDate adds etaDays calendar days to launchDate.
func (c ScheduleCalculator) CalculateEstimatedArrivalDate(launchDate time.Time, etaDays int) time.Time {
	return launchDate.AddDate(0, 0, etaDays)
}

// Calculate runs GetLaunchDate and GetEtaDays and packs the result, with the
// dates truncated to midnight, into a parcel.Schedule.
func (c ScheduleCalculator) Calculate(service parcel.DeliveryService, now time.Time) (parcel.Schedule, error) {
	launch, err := c.GetLaunchDate(service, now)
	if err != nil {
		return parcel.Schedule{}, err
	}
	eta, err := c.GetEtaDays(service)
	if err != nil {
		return parcel.Schedule{}, err
	}
	return parcel.NewSchedule(launch, eta)
}

func firstWednesday(firstOfMonth time.Time) time.Time {
	offset := (int(time.Wednesday) - int(firstOfMonth.Weekday()) + 7) % 7
	return firstOfMonth.AddDate(0, 0, offset)
}

// addMonths moves t by n calendar months, clamping the day to the end of the
// target month (Jan 31 + 1 month is Feb 28/29, not Mar 3).
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return firstOfTarget.AddDate(0, 0, d-1)
}
