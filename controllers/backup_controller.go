package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// BackupController handles on-demand backups
type BackupController struct {
	runner BackupRunner
	log    *logrus.Entry
}

// NewBackupController creates a new backup controller
func NewBackupController(runner BackupRunner, log *logrus.Entry) *BackupController {
	return &BackupController{
		runner: runner,
		log:    log,
	}
}

// Create handles POST /companies/{company}/backup
func (c *BackupController) Create(w http.ResponseWriter, r *http.Request) {
	if c.runner == nil {
		renderJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "backups are not configured"})
		return
	}

	artifact, err := c.runner.BackupCompany(r.Context(), chi.URLParam(r, "company"))
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}

	renderJSON(w, http.StatusCreated, artifact)
}
