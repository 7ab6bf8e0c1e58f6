// Package backup writes backup artifacts for every company, optionally ships
// them to S3, and runs on a cron schedule.
package backup

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/config"
	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/metrics"
	"github.com/accountapp/accountapp/models"
)

// Source is the part of the document store a backup run needs
type Source interface {
	Companies(ctx context.Context) ([]models.Company, error)
	Backup(ctx context.Context, company, destDir string) (string, error)
}

// Uploader ships a local artifact to remote storage under key
type Uploader interface {
	Upload(ctx context.Context, key, localPath string) error
}

// Artifact describes one company backup
type Artifact struct {
	Company   string `json:"company"`
	Path      string `json:"path"`
	RemoteKey string `json:"remote_key,omitempty"`
}

// Result summarises a run
type Result struct {
	Artifacts []Artifact `json:"artifacts"`
	Failed    []string   `json:"failed,omitempty"`
}

// Runner backs up companies into a directory
type Runner struct {
	src      Source
	dir      string
	prefix   string
	uploader Uploader
	metrics  *metrics.Metrics
	log      *logrus.Entry
	now      func() time.Time
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithUploader ships every artifact after it is written
func WithUploader(u Uploader) RunnerOption {
	return func(r *Runner) { r.uploader = u }
}

// WithMetrics records run outcomes
func WithMetrics(m *metrics.Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithClock overrides time.Now, used by tests
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) { r.now = now }
}

// NewRunner creates a runner writing into cfg.Dir
func NewRunner(src Source, cfg config.BackupConfig, logger *logrus.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	r := &Runner{
		src:    src,
		dir:    cfg.Dir,
		prefix: cfg.S3Prefix,
		log:    logger.WithField("component", "backup"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ObjectKey returns <prefix>/<company>/<UTC timestamp>/<file>
func ObjectKey(prefix, company string, at time.Time, localPath string) string {
	return path.Join(prefix, company, at.UTC().Format("20060102T150405Z"), filepath.Base(localPath))
}

// BackupCompany writes one company's artifact and uploads it when configured
func (r *Runner) BackupCompany(ctx context.Context, company string) (Artifact, error) {
	// Each run gets its own timestamped directory so earlier artifacts are kept
	at := r.now()
	dest := filepath.Join(r.dir, at.UTC().Format("20060102T150405Z"))

	p, err := r.src.Backup(ctx, company, dest)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to back up %s: %w", company, err)
	}
	artifact := Artifact{Company: company, Path: p}

	if r.uploader != nil {
		key := ObjectKey(r.prefix, company, at, p)
		err := r.uploader.Upload(ctx, key, p)
		r.countUpload(err)
		if err != nil {
			return artifact, fmt.Errorf("failed to upload backup of %s: %w", company, err)
		}
		artifact.RemoteKey = key
	}

	r.log.WithFields(logrus.Fields{"company": company, "path": p, "remote_key": artifact.RemoteKey}).Info("Company backed up")
	return artifact, nil
}

// RunOnce backs up every registered company. A failing company does not stop
// the others; the returned error joins every failure.
func (r *Runner) RunOnce(ctx context.Context) (Result, error) {
	start := r.now()

	companies, err := r.src.Companies(ctx)
	if err != nil {
		r.countRun("error")
		return Result{}, fmt.Errorf("failed to list companies: %w", err)
	}
	if r.metrics != nil {
		r.metrics.CompaniesRegistered.Set(float64(len(companies)))
	}

	var result Result
	var errs []error
	for _, c := range companies {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		artifact, err := r.BackupCompany(ctx, c.Name)
		if err != nil {
			r.log.WithError(err).WithField("company", c.Name).Error("Backup failed")
			r.countRun("error")
			result.Failed = append(result.Failed, c.Name)
			errs = append(errs, err)
			continue
		}
		r.countRun("success")
		result.Artifacts = append(result.Artifacts, artifact)
	}

	if r.metrics != nil {
		r.metrics.BackupDuration.Observe(r.now().Sub(start).Seconds())
		if len(errs) == 0 {
			r.metrics.BackupLastSuccess.Set(float64(r.now().Unix()))
		}
	}

	r.log.WithFields(logrus.Fields{
		"companies": len(companies),
		"failed":    len(result.Failed),
	}).Info("Backup run finished")
	return result, errors.Join(errs...)
}

func (r *Runner) countRun(status string) {
	if r.metrics != nil {
		r.metrics.BackupRunsTotal.WithLabelValues(status).Inc()
	}
}

func (r *Runner) countUpload(err error) {
	if r.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	r.metrics.BackupUploadsTotal.WithLabelValues(status).Inc()
}
