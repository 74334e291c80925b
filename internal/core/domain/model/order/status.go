package order

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Assigned ──> Shipped
//	   │  ^         │
//	   │  └─────────┘ (unassign)
//	   v
//	Cancelled
//
// Shipped and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Assigned
	Shipped
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "PENDING",
	Assigned:  "ASSIGNED",
	Shipped:   "SHIPPED",
	Cancelled: "CANCELLED",
}

// ParseStatus converts the persisted or wire representation back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}

// HoldsCapacity reports whether an order in status s counts towards its vehicle's load.
func (s Status) HoldsCapacity() bool {
	return s == Assigned || s == Shipped
}

// ValidateCanHaveVehicle checks that a vehicle reference is present exactly
// when the status holds capacity.
func (s Status) ValidateCanHaveVehicle(hasVehicle bool) error {
	if hasVehicle && !s.HoldsCapacity() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a vehicle", s),
		)
	}
	if !hasVehicle && s.HoldsCapacity() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no vehicle", s),
		)
	}
	return nil
}

// Assign moves Pending to Assigned.
func (s Status) Assign() (Status, error) {
	return s.transition(Pending, Assigned, "assign")
}

// Unassign moves Assigned back to Pending.
func (s Status) Unassign() (Status, error) {
	return s.transition(Assigned, Pending, "unassign")
}

// Cancel moves Pending to Cancelled. An assigned order has to be unassigned first.
func (s Status) Cancel() (Status, error) {
	return s.transition(Pending, Cancelled, "cancel")
}

// Ship moves Assigned to Shipped.
func (s Status) Ship() (Status, error) {
	return s.transition(Assigned, Shipped, "ship")
}

func (s Status) transition(from, to Status, action string) (Status, error) {
	if s != from {
		return Unknown, errs.NewInvalidStateError("order", s.String(), action)
	}
	return to, nil
}
