// Package ports defines the contracts between the parcel domain and
// infrastructure: persistence, transactions and time.
package ports

import "time"

// Clock supplies the current instant. Use cases read it once per operation
// and pass the value down, so a single request never sees two different
// "now" values.
//
// github.com/juju/clock.WallClock satisfies Clock in production and
// github.com/juju/clock/testclock in tests.
type Clock interface {
	Now() time.Time
}
