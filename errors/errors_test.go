package errors

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := ErrDBQueryFailed("list_interactions", cause)

	assert.Equal(t, "[DB_QUERY_FAILED] Database error occurred.: connection refused", err.Error())
	assert.Equal(t, "list_interactions", err.Details["operation"])
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "[INVALID_ARGUMENT] Input text cannot be empty.", ErrEmptyText().Error())
}

func TestAppError_As(t *testing.T) {
	wrapped := fmt.Errorf("get interaction: %w", ErrInteractionNotFound(42))

	var appErr AppError
	require.True(t, stdErrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.Equal(t, ErrorCode_NOT_FOUND, appErr.Code)
	assert.Equal(t, "Interaction with ID 42 not found", appErr.Message)
	assert.Equal(t, "42", appErr.Details["interaction_id"])
}

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		err  AppError
		code int
	}{
		{ErrInternal(nil), http.StatusInternalServerError},
		{ErrInvalidPayload(nil), http.StatusBadRequest},
		{ErrValidation([]FieldError{{Field: "hcp_name", Rule: "required", Message: "Field required"}}), http.StatusUnprocessableEntity},
		{ErrEmptyText(), http.StatusBadRequest},
		{ErrAIServiceUnavailable("groq"), http.StatusInternalServerError},
		{ErrAIExtractionFailed(), http.StatusInternalServerError},
		{ErrDBUnavailable(nil), http.StatusServiceUnavailable},
		{ErrDBQueryFailed("create_interaction", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Code.String(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
	assert.Nil(t, ErrAIExtractionFailed().Raw)
}

func TestErrorCode_MarshalText(t *testing.T) {
	b, err := json.Marshal(map[string]any{"code": ErrorCode_VALIDATION_FAILED})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code": "VALIDATION_FAILED"}`, string(b))

	assert.Equal(t, "UNKNOWN", ErrorCode(99999).String())
}
