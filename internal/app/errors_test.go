package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))
}

func TestIsUnauthenticatedError(t *testing.T) {
	assert.False(t, IsUnauthenticatedError(errors.New("simple error")))
	assert.False(t, IsUnauthenticatedError(InvalidRequestError("invalid")))

	err := fmt.Errorf("wrapping message: %w", UnauthenticatedError("missing token"))
	assert.True(t, IsUnauthenticatedError(err))
}

func TestTransportError(t *testing.T) {
	err := fmt.Errorf("calling github: %w", &TransportError{Err: context.DeadlineExceeded})
	assert.True(t, IsTransportError(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	var te *TransportError
	if assert.True(t, errors.As(err, &te)) {
		assert.True(t, te.Timeout())
	}

	refused := &TransportError{Err: errors.New("connection refused")}
	assert.False(t, refused.Timeout())
	assert.False(t, IsTransportError(errors.New("simple error")))
}

func TestAsUpstreamAPIError(t *testing.T) {
	err := fmt.Errorf("wrapping message: %w", &UpstreamAPIError{StatusCode: 404, Message: "Not Found"})
	e, ok := AsUpstreamAPIError(err)
	if assert.True(t, ok) {
		assert.Equal(t, 404, e.StatusCode)
		assert.Equal(t, "Not Found", e.Message)
	}

	_, ok = AsUpstreamAPIError(errors.New("simple error"))
	assert.False(t, ok)
}

func TestGraphQLError(t *testing.T) {
	err := fmt.Errorf("wrapping message: %w", &GraphQLError{
		Errors: []GraphQLErrorItem{
			{Type: "NOT_FOUND", Message: "Could not resolve to a User"},
			{Message: "second"},
		},
	})

	e, ok := AsGraphQLError(err)
	if assert.True(t, ok) {
		assert.Len(t, e.Errors, 2)
	}
	assert.Contains(t, err.Error(), "Could not resolve to a User; second")
}
