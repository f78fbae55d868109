package entities

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingCredential is returned when no usable access token was supplied.
var ErrMissingCredential = errors.New("token cannot be empty")

// ErrMissingOwner is returned when the creation response has no owner login.
var ErrMissingOwner = errors.New("repository owner missing from response")

// ResponseError is returned by providers when a call does not end with the
// expected status. StatusCode is 0 when no response was received at all.
type ResponseError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *ResponseError) Error() string {
	msg := e.Operation
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: HTTP %d", msg, e.StatusCode)
	}
	switch {
	case e.Body != "":
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	case e.Err != nil:
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ResponseError) Unwrap() error { return e.Err }

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}

// BodyOf returns the server body carried by err, falling back to the error text.
func BodyOf(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) && respErr.Body != "" {
		return respErr.Body
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// CreationErrorMessage maps a repository creation status to the message shown to the user.
func CreationErrorMessage(statusCode int) string {
	switch statusCode {
	case http.StatusUnprocessableEntity:
		return "Repository already exists"
	case http.StatusUnauthorized:
		return "Authentication failed"
	case http.StatusNotFound:
		return "Permission denied"
	default:
		return "Unknown error"
	}
}
