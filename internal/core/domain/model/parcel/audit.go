package parcel

import (
	"fmt"
	"slices"
	"time"

	"parceltracking/internal/pkg/errs"
)

// AuditEntry records that a parcel entered a status on a given calendar day.
// The timestamp comes from the clock at the moment of the transition, not from
// the parcel schedule.
type AuditEntry struct {
	status    Status
	timestamp string
}

// NewAuditEntry stamps status with now formatted as yyyy-MM-dd (UTC).
func NewAuditEntry(status Status, now time.Time) AuditEntry {
	return AuditEntry{status: status, timestamp: FormatDate(now)}
}

// RestoreAuditEntry rebuilds an entry read back from storage.
func RestoreAuditEntry(status Status, timestamp string) (AuditEntry, error) {
	if err := status.Validate(); err != nil {
		return AuditEntry{}, err
	}
	if _, err := time.Parse(DateFormat, timestamp); err != nil {
		return AuditEntry{}, errs.NewValueIsInvalidErrorWithCause(
			"timestamp",
			fmt.Errorf("'%s' is not a yyyy-MM-dd date: %w", timestamp, err),
		)
	}
	return AuditEntry{status: status, timestamp: timestamp}, nil
}

// Status returns the status that was entered.
func (e AuditEntry) Status() Status {
	return e.status
}

// Timestamp returns the yyyy-MM-dd date of the entry.
func (e AuditEntry) Timestamp() string {
	return e.timestamp
}

// History is the audit trail of a parcel, ordered by timestamp.
type History []AuditEntry

// AppendHistory returns a new history holding every entry of history plus an
// entry for status stamped with now. The result is stable-sorted ascending by
// timestamp string, so entries sharing a date keep their relative order and
// an entry stamped earlier than the existing tail (clock skew, replays) is
// moved into date order rather than appended at the end.
//
// history itself is never modified. A nil history yields a single entry.
//
// Example:
//
//	h := parcel.AppendHistory(nil, parcel.Created, oct1)
//	h = parcel.AppendHistory(h, parcel.OnRocketToMars, sep30)
//	// [{OnRocketToMars 2025-09-30} {Created 2025-10-01}]
func AppendHistory(history History, status Status, now time.Time) History {
	entry := NewAuditEntry(status, now)
	if len(history) == 0 {
		return History{entry}
	}

	result := make(History, 0, len(history)+1)
	result = append(result, history...)
	result = append(result, entry)
	slices.SortStableFunc(result, func(a, b AuditEntry) int {
		switch {
		case a.timestamp < b.timestamp:
			return -1
		case a.timestamp > b.timestamp:
			return 1
		default:
			return 0
		}
	})
	return result
}

// Latest returns the last entry, or false for an empty history.
func (h History) Latest() (AuditEntry, bool) {
	if len(h) == 0 {
		return AuditEntry{}, false
	}
	return h[len(h)-1], true
}
