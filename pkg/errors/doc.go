// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Assembly of a driving configuration surfaces three user-facing codes:
//
//   - ErrCodeMissingField: a required name is empty or could not be defaulted
//   - ErrCodeUnknownComponent: a name has no registered implementation
//   - ErrCodeAssemblyInvariant: a registry returned success without an instance
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeUnknownComponent,
//	    "no controller registered under this name",
//	    map[string]any{
//	        "role": "controller",
//	        "name": name,
//	    },
//	)
//
// Callers classify errors with Is or CodeOf:
//
//	if errors.Is(err, errors.ErrCodeMissingField) {
//	    // prompt for the missing name
//	}
package errors
