package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("chatx.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "chatx.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "chatx.yaml")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("behavior.max_message_length", "must be at least 1", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "behavior.max_message_length", validationErr.Field)
	require.Contains(t, validationErr.Message, "must be at least 1")
}

func TestCallbackErrorIncludesOperationContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection reset")
	err := NewCallbackError("send_message", "msg-42", underlying)

	var callbackErr *CallbackError
	require.ErrorAs(t, err, &callbackErr)
	require.Equal(t, "send_message", callbackErr.Op)
	require.Equal(t, "msg-42", callbackErr.MessageID)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "msg-42")
}

func TestCallbackErrorWithoutMessageID(t *testing.T) {
	t.Parallel()

	err := NewCallbackError("load_messages", "", stdErrors.New("timeout"))
	require.Contains(t, err.Error(), "load_messages")
	require.NotContains(t, err.Error(), "message ")
}

func TestRegistryErrorIncludesKind(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("renderer is nil")
	err := NewRegistryError("poll", underlying)

	var registryErr *RegistryError
	require.ErrorAs(t, err, &registryErr)
	require.Equal(t, "poll", registryErr.Kind)
	require.True(t, stdErrors.Is(err, underlying))
}
