// Package vehicle models fleet vehicles and their payload limits.
//
// The package includes:
//   - Vehicle: the entity carrying a unique number, a Capacity and an optional zone binding
//   - Capacity: maximum weight (kg) and volume (m3), both strictly positive
//   - Load: a weight and volume pair, used both for a vehicle's current load and an order's payload
//   - Utilization: load expressed as percentages of capacity
//
// Quantities are exact decimals. A vehicle at exactly 100% of a limit is full,
// not over capacity.
package vehicle
