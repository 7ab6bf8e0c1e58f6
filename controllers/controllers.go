package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/authenticator"
	"github.com/accountapp/accountapp/backup"
	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/services"
	"github.com/accountapp/accountapp/store"
	"github.com/accountapp/accountapp/userctx"
)

// maxBodyBytes bounds request bodies; documents are whole JSON files
const maxBodyBytes = 32 << 20

// errorResponse is the body of every failed request
type errorResponse struct {
	Error  string                  `json:"error"`
	Fields models.ValidationErrors `json:"fields,omitempty"`
}

// renderJSON writes v as the JSON response body
func renderJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// renderError maps err onto a status code and writes it as JSON. Unexpected
// errors are logged and reported without detail.
func renderError(w http.ResponseWriter, r *http.Request, log *logrus.Entry, err error) {
	var (
		verrs     models.ValidationErrors
		decodeErr *store.DecodeError
	)

	switch {
	case errors.As(err, &verrs):
		renderJSON(w, http.StatusBadRequest, errorResponse{Error: verrs.Error(), Fields: verrs})
	case errors.Is(err, authenticator.ErrInvalidCredentials):
		renderJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrNotFound):
		renderJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrDuplicate):
		renderJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &decodeErr):
		renderJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		log.WithError(err).WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": userctx.GetRequestID(r.Context()),
		}).Error("Request failed")
		renderJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// badRequest reports a malformed request
func badRequest(w http.ResponseWriter, message string) {
	renderJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// decodeBody decodes the JSON request body into v
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		badRequest(w, "Failed to parse request body: "+err.Error())
		return false
	}
	return true
}

// BackupRunner writes an on-demand backup of one company
type BackupRunner interface {
	BackupCompany(ctx context.Context, company string) (backup.Artifact, error)
}

// Controllers holds all controller instances
type Controllers struct {
	Companies *CompanyController
	Documents *DocumentController
	Auth      *AuthController
	Audit     *AuditController
	Backup    *BackupController
}

// NewControllers creates and initializes all controller instances. backups may
// be nil, in which case the backup route reports 503.
func NewControllers(services *services.Services, backups BackupRunner, pageSize int, logger *logrus.Logger) *Controllers {
	if logger == nil {
		logger = logging.Discard()
	}
	log := logger.WithField("component", "controllers")

	return &Controllers{
		Companies: NewCompanyController(services, log),
		Documents: NewDocumentController(services, log),
		Auth:      NewAuthController(services, log),
		Audit:     NewAuditController(services, pageSize, log),
		Backup:    NewBackupController(backups, log),
	}
}
