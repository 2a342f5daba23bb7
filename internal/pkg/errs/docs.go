// Package errs provides standardized error types for the storefront
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a rule
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - ObjectNotFoundError: a referenced object cannot be found
//   - VersionConflictError: an optimistic-concurrency update lost the race
//
// Each error type follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers classify errors with errors.Is against the sentinels, which maps
// directly onto the request-boundary error taxonomy: precondition
// violations (ErrValueIsInvalid), missing references (ErrObjectNotFound),
// and concurrent-update conflicts (ErrVersionConflict).
package errs
