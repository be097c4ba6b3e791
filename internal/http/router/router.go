package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"courier-chat/internal/http/handlers"
	appmw "courier-chat/internal/http/middleware"
	"courier-chat/internal/http/middleware/ratelimit"
	"courier-chat/internal/http/pprofserver"
	"courier-chat/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h *handlers.Handlers, webhook *handlers.WebhookHandler, rl *ratelimit.Middleware, pprofCfg pprofserver.Config, logger logx.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appmw.Observability(logger))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/debug/pprof/*", pprofserver.Handler(pprofCfg))

	r.Group(func(r chi.Router) {
		if rl != nil {
			r.Use(rl.Handler())
		}
		r.Post("/updates", webhook.Post)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
