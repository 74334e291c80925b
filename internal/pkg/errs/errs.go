package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrInvalidGeometry   = errors.New("geometry is invalid")
	ErrConflict          = errors.New("conflict")
	ErrInvalidState      = errors.New("invalid state")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrForbidden         = errors.New("forbidden")
)

// ObjectNotFoundError reports a reference to an entity that does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports malformed input for a named parameter.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidGeometryError reports a zone boundary that is not a simple polygon.
type InvalidGeometryError struct {
	Reason string
	Cause  error
}

func NewInvalidGeometryError(reason string) *InvalidGeometryError {
	return &InvalidGeometryError{
		Reason: reason,
	}
}

func NewInvalidGeometryErrorWithCause(reason string, cause error) *InvalidGeometryError {
	return &InvalidGeometryError{
		Reason: reason,
		Cause:  cause,
	}
}

func (e *InvalidGeometryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrInvalidGeometry, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidGeometry, e.Reason)
}

func (e *InvalidGeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

// ConflictError reports an operation blocked by referential state,
// e.g. deleting a zone that vehicles still reference.
type ConflictError struct {
	Resource string
	ID       any
	Reason   string
}

func NewConflictError(resource string, id any, reason string) *ConflictError {
	return &ConflictError{
		Resource: resource,
		ID:       id,
		Reason:   reason,
	}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", ErrConflict, e.Resource, e.ID, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidStateError reports a transition attempted from a disallowed status.
type InvalidStateError struct {
	Entity string
	State  string
	Action string
}

func NewInvalidStateError(entity, state, action string) *InvalidStateError {
	return &InvalidStateError{
		Entity: entity,
		State:  state,
		Action: action,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s in %s status", ErrInvalidState, e.Action, e.Entity, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// CapacityExceededError reports that committing an assignment would
// overcommit a vehicle or that the vehicle is no longer eligible for it.
type CapacityExceededError struct {
	VehicleID any
	Reason    string
}

func NewCapacityExceededError(vehicleID any, reason string) *CapacityExceededError {
	return &CapacityExceededError{
		VehicleID: vehicleID,
		Reason:    reason,
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: vehicle %s: %s", ErrCapacityExceeded, e.VehicleID, e.Reason)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// ForbiddenError reports a principal acting outside of its scope.
type ForbiddenError struct {
	Action string
}

func NewForbiddenError(action string) *ForbiddenError {
	return &ForbiddenError{
		Action: action,
	}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
