package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/metrics"
	"github.com/accountapp/accountapp/middleware"
)

// RouterOptions carries the optional collaborators of the router
type RouterOptions struct {
	Logger   *logrus.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Timeout  time.Duration
}

// NewRouter configures all routes
func NewRouter(ctrl *Controllers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}
	r.Use(chimiddleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}
	if opts.Timeout > 0 {
		r.Use(chimiddleware.Timeout(opts.Timeout))
	}
	r.Use(middleware.Actor)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "accountapp"}`)
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(opts.Gatherer))
	}

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", ctrl.Companies.Index)
		r.With(middleware.RequireUser).Post("/", ctrl.Companies.Create)

		r.Route("/{company}", func(r chi.Router) {
			// Login names its user in the body
			r.Post("/login", ctrl.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)

				r.Get("/", ctrl.Companies.Show)
				r.Delete("/", ctrl.Companies.Delete)
				r.Post("/logout", ctrl.Auth.Logout)
				r.Post("/backup", ctrl.Backup.Create)

				r.Route("/documents", func(r chi.Router) {
					r.Get("/", ctrl.Documents.Index)
					r.Get("/{filename}", ctrl.Documents.Show)
					r.Put("/{filename}", ctrl.Documents.Update)
					r.Get("/{filename}/export.csv", ctrl.Documents.ExportCSV)
				})

				r.Route("/audit", func(r chi.Router) {
					r.Get("/", ctrl.Audit.Index)
					r.Get("/export", ctrl.Audit.Export)
					r.Get("/{entity_type}/{entity_id}", ctrl.Audit.History)
				})

				r.Get("/users/{user}/activity", ctrl.Audit.Activity)
			})
		})
	})

	return r
}
