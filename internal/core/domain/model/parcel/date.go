package parcel

import "time"

// DateFormat is the wire and audit format of calendar dates (yyyy-MM-dd).
const DateFormat = "2006-01-02"

// TruncateToDate drops the time-of-day component of t, in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as yyyy-MM-dd in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}
