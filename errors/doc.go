/*
Package errors provides semantic error types for the labelkit library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrUnknownLabel    = errors.New("unknown label")
	    ErrNotRegistered   = errors.New("callable not registered")
	    ErrInvalidArgument = errors.New("invalid argument")
	)

Usage:

	// Check error type
	labels, err := labelkit.Info(clb)
	if err != nil {
	    if errors.IsNotRegistered(err) {
	        // Handle unregistered callable
	        return nil
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewUnknownLabelError("volatile")
	err := errors.NewNotRegisteredError("Square")
	err := errors.NewInvalidArgumentError("clb must be callable")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
