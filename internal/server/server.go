// Package server exposes saved forms over a conventional HTTP CRUD
// surface. It is independent of the wizard's browser-local session
// persistence; the two never share state.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joeshaw/envdecode"

	"github.com/formcanvas/formcanvas/internal/logger"
	"github.com/formcanvas/formcanvas/internal/registry"
)

// Options configures the HTTP server, decoded from the environment.
type Options struct {
	Addr         string        `env:"FORMCANVAS_ADDR,default=:3000"`
	ReadTimeout  time.Duration `env:"FORMCANVAS_READ_TIMEOUT,default=15s"`
	WriteTimeout time.Duration `env:"FORMCANVAS_WRITE_TIMEOUT,default=15s"`
	IdleTimeout  time.Duration `env:"FORMCANVAS_IDLE_TIMEOUT,default=60s"`
}

// OptionsFromEnv decodes Options from FORMCANVAS_* environment
// variables, applying defaults for anything unset.
func OptionsFromEnv() (Options, error) {
	var opts Options
	if err := envdecode.Decode(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Server is the web server for the form CRUD API.
type Server struct {
	*http.Server
	Router *mux.Router

	forms *registry.Registry
	log   *logger.Logger
}

// New returns a Server with an initialised router and http.Server.
func New(opts Options, forms *registry.Registry, log *logger.Logger) *Server {
	srv := &Server{
		Router: mux.NewRouter(),
		forms:  forms,
		log:    log,
	}

	srv.Server = &http.Server{
		Addr:         opts.Addr,
		Handler:      srv.Router,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}

	srv.Router.Use(srv.logRequests)
	srv.routes()
	return srv
}

func (s *Server) routes() {
	api := s.Router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/forms", s.listForms).Methods(http.MethodGet)
	api.HandleFunc("/forms", s.createForm).Methods(http.MethodPost)
	api.HandleFunc("/forms/{id}", s.getForm).Methods(http.MethodGet)
	api.HandleFunc("/forms/{id}", s.updateForm).Methods(http.MethodPut)
	api.HandleFunc("/forms/{id}", s.deleteForm).Methods(http.MethodDelete)
}

// Start runs ListenAndServe in a goroutine and returns. Use Stop to
// shut down.
func (s *Server) Start() {
	go func() {
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error(err, "server stopped")
		}
	}()
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(map[string]any{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("request handled")
	})
}
