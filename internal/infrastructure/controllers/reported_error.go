package controllers

import "errors"

// reportedError marks an error that was already shown to the user, so the
// process can exit non-zero without logging it a second time.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already logged by a controller.
func IsReported(err error) bool {
	var target *reportedError
	return errors.As(err, &target)
}
