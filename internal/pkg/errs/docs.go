// Package errs provides standardized error types for the courier dispatch service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The error types fall into the three kinds the use cases report:
//   - not found: ObjectNotFoundError, ObjectsNotFoundError (a whole batch of missing ids)
//   - conflict: ConflictError (illegal state transition, duplicate unique value, repeated payment)
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Callers classify errors with errors.Is against the sentinels, or with the IsNotFound,
// IsConflict and IsValidation helpers; the HTTP adapter maps the kinds to status codes.
package errs
