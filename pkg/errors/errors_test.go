package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithInternalPreservesOriginal(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := ErrInternalServer.WithInternal(cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, ErrInternalServer.Code, err.Code)
	require.Contains(t, err.Error(), "connection refused")
}

func TestFromErrorUnwrapsAppError(t *testing.T) {
	wrapped := NewConflict("position code already exists")

	appErr := FromError(wrapped)
	require.Equal(t, http.StatusConflict, appErr.StatusCode)
	require.Equal(t, "CONFLICT", appErr.Code)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	appErr := FromError(stderrors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
}

func TestFromErrorNil(t *testing.T) {
	require.Nil(t, FromError(nil))
}

func TestWrapCarriesMessageAndCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, "failed to persist")

	require.Equal(t, http.StatusInternalServerError, err.StatusCode)
	require.ErrorIs(t, err, cause)
}
