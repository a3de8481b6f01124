package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Recipient string `json:"recipient" validate:"required"`
	Months    int    `json:"months" validate:"gt=0"`
}

func TestValidateAndDecode(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"recipient":"alice@example.com","months":12}`))
		var p samplePayload
		assert.Nil(t, ValidateAndDecode(r, &p))
		assert.Equal(t, "alice@example.com", p.Recipient)
	})

	t.Run("malformed json", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		var p samplePayload
		appErr := ValidateAndDecode(r, &p)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Invalid request body", appErr.Message)
	})

	t.Run("failed validation", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"months":0}`))
		var p samplePayload
		appErr := ValidateAndDecode(r, &p)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "Recipient")
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, ValidateVar(3, "gt=0"))
	assert.Error(t, ValidateVar(0, "gt=0"))
}

func TestAppError_Send(t *testing.T) {
	rr := httptest.NewRecorder()
	NewAppError(http.StatusUnprocessableEntity, "withdrawal denied", nil).
		WithDetails(map[string]string{"limit": "9500.00"}).
		Send(rr)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "withdrawal denied", body["message"])
	assert.Equal(t, map[string]interface{}{"limit": "9500.00"}, body["details"])
}
