package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// InvalidRequestError is special error type returned when any request params are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	var e InvalidRequestError
	return errors.As(err, &e)
}

// UnauthenticatedError is returned when a request comes without bearer token or username.
// It is always returned before any upstream call is made.
type UnauthenticatedError string

// Error implements error interface.
func (e UnauthenticatedError) Error() string {
	return string(e)
}

// IsUnauthenticatedError checks if given error is caused by missing credentials.
func IsUnauthenticatedError(err error) bool {
	var e UnauthenticatedError
	return errors.As(err, &e)
}

// TooManyRequestsError is returned when the local rate limiter gave up waiting for a free slot.
type TooManyRequestsError string

// Error implements error interface.
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequestsError checks if given error is caused by the local rate limiter.
func IsTooManyRequestsError(err error) bool {
	var e TooManyRequestsError
	return errors.As(err, &e)
}

// TransportError means an upstream http call couldn't complete (dns, connection, timeout).
// Callers may retry.
type TransportError struct {
	Err error
}

// Error implements error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout tells if the call was aborted by a deadline.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	if errors.As(e.Err, &te) {
		return te.Timeout()
	}
	return false
}

// IsTransportError checks if given error was caused by upstream transport failure.
func IsTransportError(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// UpstreamAPIError carries non-success status returned by github.
type UpstreamAPIError struct {
	StatusCode int
	Message    string
}

// Error implements error interface.
func (e *UpstreamAPIError) Error() string {
	return fmt.Sprintf("github api returned status %d: %s", e.StatusCode, e.Message)
}

// AsUpstreamAPIError extracts UpstreamAPIError from the error chain.
func AsUpstreamAPIError(err error) (*UpstreamAPIError, bool) {
	var e *UpstreamAPIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GraphQLErrorItem is a single entry of graphql "errors" array.
type GraphQLErrorItem struct {
	Type    string        `json:"type,omitempty"`
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// GraphQLError is returned when graphql response carries non empty "errors" array,
// regardless of http status.
type GraphQLError struct {
	Errors []GraphQLErrorItem
}

// Error implements error interface.
func (e *GraphQLError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		msgs = append(msgs, item.Message)
	}
	return "graphql error: " + strings.Join(msgs, "; ")
}

// AsGraphQLError extracts GraphQLError from the error chain.
func AsGraphQLError(err error) (*GraphQLError, bool) {
	var e *GraphQLError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
