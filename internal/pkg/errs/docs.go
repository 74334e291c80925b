// Package errs provides standardized error types for the fleet application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per error kind reported to callers:
//   - ObjectNotFoundError: a referenced id does not exist (NotFound)
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input (Invalid)
//   - InvalidGeometryError: a zone boundary is not a simple polygon (InvalidGeometry)
//   - ConflictError: a deletion is blocked by referential state (Conflict)
//   - InvalidStateError: a transition is attempted from a disallowed status (InvalidState)
//   - CapacityExceededError: an assignment would overcommit a vehicle (CapacityExceeded)
//   - ForbiddenError: the principal acts outside of its scope
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
package errs
