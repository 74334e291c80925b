// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding payload, pickup point, status and vehicle reference
//   - Status: PENDING, ASSIGNED, SHIPPED, CANCELLED and the allowed transitions between them
//   - Dimensions: parcel size in centimetres, from which the volume in m3 is derived
//   - Event: lifecycle changes recorded on the aggregate for publication after commit
//
// Key business rules:
//   - Orders start Pending and are assigned to at most one vehicle at a time
//   - Only Pending orders can be assigned or cancelled
//   - Only Assigned orders can be unassigned or shipped
//   - Shipped and Cancelled are terminal
//
// Capacity and zone eligibility live outside the aggregate, in the domain
// services, because they depend on other orders and on the vehicle's zone.
package order
