// Package kernel provides the shared value objects of the fleet domain.
//
// The package includes:
//   - UUID: identifier of zones, vehicles, orders and companies
//   - GeoPoint: a validated (latitude, longitude) pair used for pickup points and zone vertices
//
// Both are immutable and safe for concurrent use. Their zero values are invalid
// and fail Validate, so values that skipped a constructor are caught early.
package kernel
