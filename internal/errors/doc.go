// Package errors provides typed error handling for ledgerview operations.
//
// Every error carries a stable string code that both transport adapters
// render verbatim, so agents see the same failure regardless of whether
// they called over stdio or HTTP.
//
// Example usage:
//
//	// Creating errors
//	err := errors.DocNotFound("safety-gates")
//	err := errors.DocExists("guide")
//
//	// Wrapping errors
//	err := errors.ProjectInvalid("/srv/app", ioErr)
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeDocExists) {
//	    // handle name collision
//	}
//
//	// Extracting codes
//	code := errors.Code(err)
//	if code == errors.CodeToolNotFound {
//	    // render as a protocol-level not-found
//	}
//
//	// Stdlib compatibility
//	var lvErr *errors.Error
//	if errors.As(err, &lvErr) {
//	    fmt.Println(lvErr.Code, lvErr.Message)
//	}
package errors
