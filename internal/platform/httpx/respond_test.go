package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyErr struct{}

func (emptyErr) Error() string { return "" }

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", fmt.Errorf("%w: name required", ErrValidation), http.StatusBadRequest, "validation failed: name required"},
		{"not found", fmt.Errorf("vendor: %w", ErrNotFound), http.StatusNotFound, "vendor: resource not found"},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, "connection reset"},
		{"internal without message", emptyErr{}, http.StatusInternalServerError, "Unknown error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondError(rec, tc.err, "Unknown error")
			assert.Equal(t, tc.status, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.message, body["message"])
			assert.NotContains(t, body, "data")
		})
	}
}

func TestUnauthorizedShape(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, ErrUnauthorized, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestOKCarriesData(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, http.StatusCreated, []string{})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestRespondErrorUsesDomainMessage(t *testing.T) {
	notFound := NewError(ErrNotFound, "Vendor not found")
	rec := httptest.NewRecorder()
	RespondError(rec, notFound, "Unknown error")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Vendor not found"}`, rec.Body.String())
	assert.ErrorIs(t, notFound, ErrNotFound)
}
