// Package kernel provides the value objects shared across the parcel domain:
//   - UUID: the storage identity of a parcel
//   - Barcode: the public, externally issued key of a parcel (RMARS format)
//
// Both are immutable and only valid when built through their constructors.
package kernel
