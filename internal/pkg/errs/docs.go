// Package errs provides the error taxonomy shared by the domain, the use cases and the
// HTTP adapter.
//
// Validation errors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//
// Lookup and state errors:
//   - ObjectNotFoundError: a referenced parcel, rider or user does not resolve
//   - ConflictError: the operation is not allowed from the entity's current state
//
// Access errors:
//   - UnauthorizedError: no valid credential was presented
//   - ForbiddenError: the caller is authenticated but has the wrong identity or role
//
// Every type has a sentinel (ErrObjectNotFound, ErrConflict, ...), constructors with
// and without a cause, and an Unwrap method returning the sentinel, so the HTTP layer
// maps errors to status codes with errors.Is only.
package errs
