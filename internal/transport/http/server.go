package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sandevgo/triagebot/internal/service/session"
	"github.com/sandevgo/triagebot/internal/service/triage"
	"github.com/sandevgo/triagebot/pkg/log"
)

// Server exposes the chat and session API over REST. It implements
// srv.Service.
type Server struct {
	srv *http.Server
}

func NewServer(ctx context.Context, port int, triageSvc *triage.Service, sessions *session.Manager) *Server {
	h := &handler{triage: triageSvc, sessions: sessions}

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           newRouter(ctx, h),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func newRouter(ctx context.Context, h *handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(ctx))

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.chat)
		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", h.listSessions)
			r.Delete("/", h.deleteAllSessions)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getSession)
				r.Patch("/", h.renameSession)
				r.Delete("/", h.deleteSession)
			})
		})
	})

	return r
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.srv.Addr).Msg("starting http server")
	if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// requestLogger threads the base context logger into every request so
// handlers can use log.FromCtx.
func requestLogger(base context.Context) func(http.Handler) http.Handler {
	logger := log.FromCtx(base)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
