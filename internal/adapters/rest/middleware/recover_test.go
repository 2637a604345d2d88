package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/logger"
)

func TestRecovererWritesJSONError(t *testing.T) {
	var logs bytes.Buffer
	log := logger.NewSlogAdapterWithWriter(&logs, "test", "error")
	handler := Recoverer(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var items []int
		_ = items[3]
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(apperror.CodeInternalError), body.Error)
	assert.NotContains(t, body.Message, "index out of range")
	assert.Contains(t, logs.String(), "panic recovered")
}

func TestRecovererReraisesAbort(t *testing.T) {
	handler := Recoverer(logger.NewBootstrapLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
