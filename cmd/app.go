package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/accountapp/accountapp/audit"
	"github.com/accountapp/accountapp/authenticator"
	"github.com/accountapp/accountapp/config"
	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/metrics"
	"github.com/accountapp/accountapp/services"
	"github.com/accountapp/accountapp/store"
)

// app wires the components every command works with
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	store    store.Store
	audit    *audit.Manager
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	services *services.Services

	closers []io.Closer
}

// newApp loads the configuration and opens the store and audit trails
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: logger, closers: []io.Closer{logCloser}}

	st, err := store.New(cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	a.store = st
	a.closers = append(a.closers, st)

	a.audit, err = audit.NewManager(cfg.DataDir, cfg.Audit, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.New(a.registry)
	a.audit.Instrument(a.metrics)

	a.services = services.NewServices(st, a.audit, authenticator.NewLocal(st), a.metrics, logger)

	logger.WithFields(logrus.Fields{
		"data_dir": cfg.DataDir,
		"sqlite":   cfg.Store.UseSQLite,
	}).Debug("Application initialized")

	return a, nil
}

// Close releases everything newApp opened, in reverse order
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
