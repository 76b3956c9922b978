package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("order not found")
	assert.Equal(t, "order not found", err.Error())

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)

	_, ok = IsNotFoundError(errors.New("some other error"))
	assert.False(t, ok)
}

func TestNotFoundError_WrappedIsStillRecognized(t *testing.T) {
	wrapped := fmt.Errorf("fetching order: %w", NewNotFoundError("order with id 4 not found"))

	nfe, ok := IsNotFoundError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "order with id 4 not found", nfe.Message)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("invalid order",
		ValidationDetail{Field: "id", Message: "must be positive"},
		ValidationDetail{Field: "customer", Message: "required"},
	)

	assert.Equal(t, "invalid order", err.Error())
	assert.Len(t, err.Details, 2)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "id", ve.Details[0].Field)
}

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("paging parameters out of range")

	iae, ok := IsInvalidArgumentError(err)
	assert.True(t, ok)
	assert.Equal(t, "paging parameters out of range", iae.Message)

	_, ok = IsInvalidArgumentError(NewNotFoundError("nope"))
	assert.False(t, ok)
}

func TestParseError(t *testing.T) {
	cause := errors.New("cannot parse")
	err := NewParseError("malformed OrderDate", cause)

	assert.Equal(t, "malformed OrderDate: cannot parse", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	pe, ok := IsParseError(err)
	assert.True(t, ok)
	assert.NotNil(t, pe)
}

func TestInternalError(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewInternalError("updating order", cause)

	assert.Equal(t, "updating order: database is locked", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	ie, ok := IsInternalError(err)
	assert.True(t, ok)
	assert.NotNil(t, ie)
}

func TestInternalError_WithoutCause(t *testing.T) {
	err := NewInternalError("unexpected state", nil)
	assert.Equal(t, "unexpected state", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
