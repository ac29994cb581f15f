package http

import (
	"net/http"

	"github.com/bnema/swapaudio/internal/adapter/http/middleware"
	"github.com/bnema/swapaudio/internal/adapter/http/ratelimit"
	"github.com/bnema/swapaudio/internal/domain"
)

type Options struct {
	CORSOrigin  string
	RateLimiter *ratelimit.ClientLimiter
	BehindProxy bool
}

type Server struct {
	mux      *http.ServeMux
	handler  http.Handler
	handlers *Handlers
	opts     Options
}

func NewServer(handlers *Handlers, opts Options) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		handlers: handlers,
		opts:     opts,
	}

	s.registerRoutes()

	s.handler = middleware.RequestLogger(
		middleware.SecurityHeaders(
			middleware.CORS(opts.CORSOrigin)(s.mux),
		),
	)

	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handlers.Index())
	s.mux.HandleFunc("GET /healthz", s.handlers.Health())

	var process http.Handler = s.handlers.Process()
	if s.opts.RateLimiter != nil {
		process = s.opts.RateLimiter.Middleware(process, s.opts.BehindProxy)
	}
	s.mux.Handle("POST /api/process", process)
	s.mux.HandleFunc("GET /api/jobs/{id}", s.handlers.Job())

	s.mux.HandleFunc("GET "+domain.PublicPrefix+"/{name}", s.handlers.Uploads())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
