// Package services provides domain services that span several aggregates of
// the fleet domain.
//
// The package includes:
//   - CapacityTracker: derives a vehicle's load and utilization from its orders
//   - CompatibilityMatcher: decides zone and capacity eligibility of vehicles
//     for an order and performs the checked assignment
//
// Both services are stateless and free of I/O. Callers load the aggregates
// inside a transaction and pass them in.
package services
