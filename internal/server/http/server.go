package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mitchfriedman/siphon/internal/metrics"
	"github.com/mitchfriedman/siphon/internal/runtime"
	"github.com/mitchfriedman/siphon/internal/server/http/controllers"
	queuesvc "github.com/mitchfriedman/siphon/internal/services/queues"
	logpkg "github.com/mitchfriedman/siphon/pkg/log"
)

type Server struct {
	rt  *runtime.Runtime
	srv *http.Server
	lis net.Listener
}

// New builds the HTTP server: middleware stack, controller routes, and the
// Prometheus endpoint.
func New(rt *runtime.Runtime, logger logpkg.Logger) *Server {
	if logger == nil {
		logger = logpkg.NewNop()
	}
	svc := queuesvc.NewWithLogger(rt, logger.With(logpkg.F("component", "queues")))

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(requestLog(logger))

	httpCfg := rt.Config().HTTP
	origins := httpCfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	if httpCfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(httpCfg.RateLimitPerMinute, time.Minute))
	}

	controllers.NewControllerRegistry(rt, svc).RegisterAllRoutes(r)
	r.Handle("/metrics", promhttp.Handler())

	return &Server{
		rt: rt,
		srv: &http.Server{
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe serves on addr until ctx is canceled, then drains with a
// short grace period.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

// requestLog emits one debug line per request once the response is written.
func requestLog(logger logpkg.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				logpkg.F("method", r.Method),
				logpkg.F("path", r.URL.Path),
				logpkg.F("status", ww.Status()),
				logpkg.F("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}
