// Package parcel provides the Parcel aggregate and the value objects that
// describe its lifecycle.
//
// The package includes:
//   - Status: the closed set of lifecycle states
//   - DeliveryService: the delivery tier (Standard or Express)
//   - Schedule: launch date, ETA in days and estimated arrival date
//   - AuditEntry / History: the date-stamped trail of status changes
//   - StatusDecision / Snapshot: the inputs and outputs of transition validation
//   - Parcel: the aggregate root tying these together
//
// Lifecycle:
//
//	Created ──> OnRocketToMars ──> LandedOnMars ──> OutForMartianDelivery ──> Delivered
//	                  │                                      │
//	                  └──────────────> Lost <────────────────┘
//
// Delivered and Lost are terminal. The time gates on the first two edges are
// enforced by services.TransitionValidator; this package only stores the result.
//
// Dates are calendar dates: every time.Time held by this package is truncated
// to midnight UTC.
package parcel
