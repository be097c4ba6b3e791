package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	testlog "courier-chat/internal/testutil"
)

func TestPing(t *testing.T) {
	t.Parallel()

	h := New(testlog.New().Logger())
	rr := httptest.NewRecorder()
	h.Ping(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"message":"pong"}`, rr.Body.String())
}

func TestHealthcheckHead(t *testing.T) {
	t.Parallel()

	h := New(testlog.New().Logger())
	rr := httptest.NewRecorder()
	h.HealthcheckHead(rr, httptest.NewRequest(http.MethodHead, "/healthcheck", nil))

	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	h := New(testlog.New().Logger())
	rr := httptest.NewRecorder()
	h.NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"error":"route not found"}`, rr.Body.String())
}
