package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/wordbook/docs/swagger"
	"github.com/joestump/wordbook/internal/metrics"
	"github.com/joestump/wordbook/internal/store"
)

// Deps holds all dependencies required to build the router.
// Languages and Words are usually the same backend value.
type Deps struct {
	Languages  store.LanguageStoreIface
	Words      store.WordStoreIface
	Logger     *logrus.Logger
	CORSOrigin string
}

// NewRouter assembles the chi router with middleware, the language and word
// routes, and the metrics and API docs endpoints.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(instrument)
	r.Use(corsPolicy(deps.CORSOrigin).Handler)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	registerLanguageRoutes(r, deps.Languages, logger)
	registerWordRoutes(r, deps.Words, logger)

	return r
}

// corsPolicy accepts a single origin, the four API methods and the Content-Type header.
func corsPolicy(origin string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
}

// instrument records request counts and latency labelled by the matched route pattern.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
