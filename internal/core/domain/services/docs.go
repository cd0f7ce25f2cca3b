// Package services provides the stateless decision logic of the parcel
// lifecycle:
//   - ScheduleCalculator: launch date, ETA and estimated arrival per delivery tier
//   - TransitionValidator: whether a requested status change is allowed right now
//
// Both are pure. The current instant is passed in by the caller, which reads
// it once from its clock, so results are reproducible for any given input.
package services
