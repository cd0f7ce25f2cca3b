package parcel

import (
	"fmt"
	"strings"

	"parceltracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// Statuses are ordered by lifecycle progression but must not be compared
// arithmetically: Lost follows Delivered in the enumeration yet can be
// reached from earlier states.
type Status int

const (
	// Unknown is the zero value. It is never stored; it is what a failed
	// parse resolves to.
	Unknown Status = iota

	// Created is the initial status of every new parcel.
	Created

	// OnRocketToMars means the parcel has launched.
	OnRocketToMars

	// LandedOnMars means the rocket carrying the parcel has arrived.
	LandedOnMars

	// OutForMartianDelivery means the parcel is with a Martian courier.
	OutForMartianDelivery

	// Delivered is terminal.
	Delivered

	// Lost is terminal.
	Lost
)

var statusNames = map[Status]string{
	Created:               "Created",
	OnRocketToMars:        "OnRocketToMars",
	LandedOnMars:          "LandedOnMars",
	OutForMartianDelivery: "OutForMartianDelivery",
	Delivered:             "Delivered",
	Lost:                  "Lost",
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Created, OnRocketToMars, LandedOnMars, OutForMartianDelivery, Delivered, Lost}
}

// ParseStatus matches s case-insensitively against the status names.
// Surrounding whitespace is not trimmed; " Lost" is not a status.
//
// Example:
//
//	s, ok := parcel.ParseStatus("onrockettomars") // OnRocketToMars, true
//	s, ok = parcel.ParseStatus("Launched")        // Unknown, false
func ParseStatus(s string) (Status, bool) {
	for _, status := range Statuses() {
		if strings.EqualFold(s, statusNames[status]) {
			return status, true
		}
	}
	return Unknown, false
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Validate returns a ValueIsInvalidError for Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Lost
}
