package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestValidationErrorCarriesFieldDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"date": "date must be in YYYY-MM-DD format"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decode(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "date must be in YYYY-MM-DD format", resp.Error.Details["date"])
}

func TestConflictEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Conflict(rec, "Already checked in today")

	assert.Equal(t, http.StatusConflict, rec.Code)

	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
	assert.Equal(t, "Already checked in today", resp.Error.Message)
}
