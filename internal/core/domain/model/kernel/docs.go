// Package kernel provides the value objects shared by every aggregate:
//   - UUID: aggregate identifiers
//   - Email: normalized identity used to link users, riders and parcel assignments
//   - Money: non-negative two-digit decimal amounts
//
// All kernel values are immutable and safe for concurrent use.
package kernel
