package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"courier-chat/internal/frontend"
	"courier-chat/internal/http/handlers"
	"courier-chat/internal/http/middleware/ratelimit"
	"courier-chat/internal/http/pprofserver"
	"courier-chat/internal/http/router"
	"courier-chat/internal/logx"
	testlog "courier-chat/internal/testutil"
)

type fakeWorkflow struct{}

func (fakeWorkflow) Handle(context.Context, int64, frontend.Intent) []frontend.Render {
	return []frontend.Render{frontend.ShowMenu{}}
}

func newRouter(t *testing.T, limiter ratelimit.Limiter) http.Handler {
	t.Helper()
	logger := testlog.New().Logger()
	h := handlers.New(logger)
	webhook := handlers.NewWebhookHandler(fakeWorkflow{}, logger)
	rl := ratelimit.New(logx.Nop(), nil, limiter)
	return router.New(h, webhook, rl, pprofserver.Config{}, logger)
}

func TestRouter_Ping(t *testing.T) {
	t.Parallel()

	r := newRouter(t, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"message":"pong"}`, rr.Body.String())
}

func TestRouter_Updates(t *testing.T) {
	t.Parallel()

	r := newRouter(t, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/updates",
		strings.NewReader(`{"session_id": 1, "text": "/menu"}`))
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"type":"menu"`)
}

func TestRouter_Updates_RateLimited(t *testing.T) {
	t.Parallel()

	blocked := ratelimit.LimiterFunc(func(string) bool { return false })
	r := newRouter(t, blocked)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/updates",
		strings.NewReader(`{"session_id": 1, "text": "/menu"}`))
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestRouter_PingNotRateLimited(t *testing.T) {
	t.Parallel()

	blocked := ratelimit.LimiterFunc(func(string) bool { return false })
	r := newRouter(t, blocked)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	r := newRouter(t, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_Pprof_LoopbackAllowed(t *testing.T) {
	t.Parallel()

	r := newRouter(t, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
	req.RemoteAddr = "127.0.0.1:40000"
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_Pprof_RemoteWithoutCredsRejected(t *testing.T) {
	t.Parallel()

	r := newRouter(t, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
	req.RemoteAddr = "203.0.113.5:40000"
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	r := newRouter(t, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"error":"route not found"}`, rr.Body.String())
}
