// Package parcel implements the Parcel aggregate: the delivery, payment and cashout
// status machines, the rider assignment snapshot and the StatusChanged events raised
// by every transition.
//
// Business rules:
//   - a parcel is created pending, unpaid and not cashed out
//   - only an admin assigns a rider, and only once
//   - only the assigned rider picks up, delivers and cashes out
//   - cashout requires a terminal delivery status and succeeds once
//   - payment is confirmed once
//
// The aggregate validates transitions in memory; the repository makes them atomic by
// persisting with a conditional update guarded on LoadedState.
package parcel
