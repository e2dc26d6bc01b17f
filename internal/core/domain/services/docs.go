// Package services provides domain services that orchestrate business operations
// across more than one aggregate of the parcel delivery system.
//
// The package includes:
//   - RiderAssigner: copies an active rider's snapshot onto a pending parcel
//   - PayoutCalculator: computes the rider's share of a parcel's cost for a route
//
// Domain services hold no state and never touch persistence; command handlers
// load the aggregates, call the service and save the result.
package services
