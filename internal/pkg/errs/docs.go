// Package errs provides standardized error types for the commerce application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the four error kinds the application distinguishes:
//   - Validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - Business rule: BusinessRuleError (legal input rejected by domain state)
//   - Not found: ObjectNotFoundError (repository misses)
//   - Concurrency: ConcurrencyConflictError (stale optimistic-lock saves)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Callers branch on error kinds with errors.Is and never inspect message
// strings. The HTTP adapter maps kinds to status codes the same way.
package errs
