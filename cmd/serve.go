package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/accountapp/accountapp/backup"
	"github.com/accountapp/accountapp/controllers"
)

const (
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local HTTP API",
	Long: `Serve the JSON API used by the desktop frontend. When backup.schedule is set,
company backups run on that cron schedule and are uploaded to S3 when
backup.s3_bucket is configured.

Environment variables:
  ACCOUNTAPP_SERVER_ADDR       Listen address (default: 127.0.0.1:8765)
  ACCOUNTAPP_DATA_DIR          Data directory (default: data)
  ACCOUNTAPP_STORE_USE_SQLITE  Use the SQLite store
  ACCOUNTAPP_BACKUP_SCHEDULE   Cron spec for backups, e.g. "0 2 * * *"
  ACCOUNTAPP_BACKUP_S3_BUCKET  Bucket receiving backup artifacts`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, err := newBackupRunner(ctx, a)
	if err != nil {
		return err
	}

	ctrl := controllers.NewControllers(a.services, runner, a.cfg.Pagination.PageSize, a.log)
	router := controllers.NewRouter(ctrl, controllers.RouterOptions{
		Logger:   a.log,
		Metrics:  a.metrics,
		Gatherer: a.registry,
		Timeout:  requestTimeout,
	})

	var scheduler *backup.Scheduler
	if a.cfg.Backup.Schedule != "" {
		scheduler, err = backup.NewScheduler(runner, a.cfg.Backup.Schedule)
		if err != nil {
			return err
		}
	}

	addr := a.cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.WithField("addr", addr).Info("Serving local API")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if scheduler != nil {
		scheduler.Start()
		a.log.WithField("next", scheduler.Next()).Info("Next backup scheduled")

		g.Go(func() error {
			<-ctx.Done()
			// Wait for a running backup to finish
			<-scheduler.Stop().Done()
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		a.log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newBackupRunner builds the runner used by the schedule, the backup route and
// the backup command, with an S3 uploader when a bucket is configured
func newBackupRunner(ctx context.Context, a *app) (*backup.Runner, error) {
	opts := []backup.RunnerOption{backup.WithMetrics(a.metrics)}

	if a.cfg.Backup.S3Bucket != "" {
		uploader, err := backup.NewS3Uploader(ctx, a.cfg.Backup)
		if err != nil {
			return nil, fmt.Errorf("failed to configure backup uploads: %w", err)
		}
		opts = append(opts, backup.WithUploader(uploader))
	}

	return backup.NewRunner(a.store, a.cfg.Backup, a.log, opts...), nil
}
