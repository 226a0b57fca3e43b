package reuseerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapturesTypeMessageAndStack(t *testing.T) {
	err := New(ErrorTypeValidation, "bad input")
	require.NotNil(t, err)
	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "validation: bad input", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestWithDetailChains(t *testing.T) {
	err := New(ErrorTypeConfig, "missing field").
		WithDetail("field", "iterations").
		WithDetail("file", "scenarios.yaml")

	assert.Equal(t, "iterations", err.Details["field"])
	assert.Equal(t, "scenarios.yaml", err.Details["file"])
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Wrap(cause, ErrorTypeInternal, "save failed")

	require.NotNil(t, err)
	assert.Equal(t, "internal: save failed: disk on fire", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, Wrap(nil, ErrorTypeInternal, "ignored"))
}

func TestWrapPreservesExistingStack(t *testing.T) {
	inner := New(ErrorTypeValidation, "inner")
	outer := Wrap(fmt.Errorf("decorated: %w", inner), ErrorTypeInternal, "outer")

	require.NotNil(t, outer)
	assert.Equal(t, inner.Stack, outer.Stack)
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeCapability, "not supported")
	wrapped := fmt.Errorf("context: %w", err)

	assert.True(t, IsType(wrapped, ErrorTypeCapability))
	assert.False(t, IsType(wrapped, ErrorTypeValidation))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeCapability))
	assert.False(t, IsType(nil, ErrorTypeCapability))
}
