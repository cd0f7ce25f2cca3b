package services

import (
	"fmt"
	"time"

	"parceltracking/internal/core/domain/model/parcel"
)

const (
	reasonUnparseableStatus = "Invalid status transition: newStatus is not a valid ParcelStatus."
	reasonNotLanded         = "Invalid status transition: Estimated arrival date is in the future, parcel hasn't landed yet."
	reasonLost              = "Invalid status transition: parcel is lost."
	reasonDelivered         = "Invalid status transition: parcel is already delivered."
	reasonUnknownCurrent    = "Invalid status transition: unable to validate status."
)

// TransitionValidator decides whether a parcel may move to a requested status.
//
// Transition table:
//
//	Created               -> OnRocketToMars         once launchDate <= now
//	OnRocketToMars        -> LandedOnMars           once estimatedArrivalDate <= now
//	OnRocketToMars        -> Lost                   any time
//	LandedOnMars          -> OutForMartianDelivery
//	OutForMartianDelivery -> Delivered | Lost
//	Delivered, Lost       -> (terminal)
//
// For the two gated rows the gate is reported before the "cannot move"
// reason: while the gate is closed every rejected request from that status,
// whatever its target, gets the gate reason.
//
// Reasons are part of the API contract and are returned verbatim to clients.
type TransitionValidator struct{}

// NewTransitionValidator creates a TransitionValidator.
func NewTransitionValidator() TransitionValidator {
	return TransitionValidator{}
}

// ValidateStatus evaluates requested (matched case-insensitively against the
// status names) against snapshot at instant now. It never fails: every
// outcome, including unparseable input, is a decision value. snapshot is not
// modified.
//
// Example:
//
//	d := validator.ValidateStatus(p.Snapshot(), "landedonmars", clock.Now())
//	if !d.Valid {
//	    return c.String(http.StatusBadRequest, d.Reason)
//	}
func (v TransitionValidator) ValidateStatus(
	snapshot parcel.Snapshot,
	requested string,
	now time.Time,
) parcel.StatusDecision {
	target, ok := parcel.ParseStatus(requested)
	if !ok {
		return parcel.StatusDecision{Reason: reasonUnparseableStatus, NewStatus: parcel.Unknown}
	}

	accept := func() parcel.StatusDecision {
		return parcel.StatusDecision{Valid: true, NewStatus: target}
	}
	reject := func(reason string) parcel.StatusDecision {
		return parcel.StatusDecision{Reason: reason, NewStatus: target}
	}
	cannotMove := func() parcel.StatusDecision {
		return reject(fmt.Sprintf("Invalid status transition: Parcels cannot move from: '%s' to: '%s'",
			snapshot.Status, target))
	}

	switch snapshot.Status {
	case parcel.Created:
		launched := !snapshot.LaunchDate.After(now)
		if target == parcel.OnRocketToMars && launched {
			return accept()
		}
		if !launched {
			return reject(fmt.Sprintf(
				"Invalid status transition: Cannot update parcel status from: '%s' to: '%s' as Launch Date: '%s' is in the future.",
				snapshot.Status, target, parcel.FormatDate(snapshot.LaunchDate)))
		}
		return cannotMove()

	case parcel.OnRocketToMars:
		arrived := !snapshot.EstimatedArrivalDate.After(now)
		if (target == parcel.LandedOnMars && arrived) || target == parcel.Lost {
			return accept()
		}
		if !arrived {
			return reject(reasonNotLanded)
		}
		return cannotMove()

	case parcel.LandedOnMars:
		if target == parcel.OutForMartianDelivery {
			return accept()
		}
		return cannotMove()

	case parcel.OutForMartianDelivery:
		if target == parcel.Delivered || target == parcel.Lost {
			return accept()
		}
		return cannotMove()

	case parcel.Lost:
		return reject(reasonLost)

	case parcel.Delivered:
		return reject(reasonDelivered)

	case parcel.Unknown:
		return reject(reasonUnknownCurrent)
	}

	return reject(reasonUnknownCurrent)
}
