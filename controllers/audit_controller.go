package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/audit"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/pagination"
	"github.com/accountapp/accountapp/services"
	"github.com/accountapp/accountapp/userctx"
)

// AuditController handles audit trail queries
type AuditController struct {
	services *services.Services
	pageSize int
	log      *logrus.Entry
}

// NewAuditController creates a new audit controller. pageSize is used when
// the request does not choose one.
func NewAuditController(services *services.Services, pageSize int, log *logrus.Entry) *AuditController {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &AuditController{
		services: services,
		pageSize: pageSize,
		log:      log,
	}
}

// Index handles GET /companies/{company}/audit
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, errs := parseFilter(q)

	page := 1
	pageSize := c.pageSize
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs = append(errs, models.ValidationError{Field: "page", Message: "Page must be a positive number"})
		}
		page = n
	}
	if v := q.Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		maxSize := pagination.PageSizes[len(pagination.PageSizes)-1]
		switch {
		case err != nil || n < 1:
			errs = append(errs, models.ValidationError{Field: "page_size", Message: "Page size must be a positive number"})
		case n > maxSize:
			errs = append(errs, models.ValidationError{Field: "page_size", Message: fmt.Sprintf("Page size must be at most %d", maxSize)})
		}
		pageSize = n
	}
	if errs.HasErrors() {
		renderError(w, r, c.log, errs)
		return
	}

	result, err := c.services.Audit.List(r.Context(), chi.URLParam(r, "company"), filter, page, pageSize)
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

// History handles GET /companies/{company}/audit/{entity_type}/{entity_id}
func (c *AuditController) History(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Audit.EntityHistory(r.Context(),
		chi.URLParam(r, "company"), chi.URLParam(r, "entity_type"), chi.URLParam(r, "entity_id"))
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}

	renderJSON(w, http.StatusOK, entries)
}

// Activity handles GET /companies/{company}/users/{user}/activity?days=N
func (c *AuditController) Activity(w http.ResponseWriter, r *http.Request) {
	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			badRequest(w, "days must be a positive number")
			return
		}
		days = n
	}

	entries, err := c.services.Audit.UserActivity(r.Context(), chi.URLParam(r, "company"), chi.URLParam(r, "user"), days)
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}

	renderJSON(w, http.StatusOK, entries)
}

// Export handles GET /companies/{company}/audit/export?format=json|ndjson|csv
func (c *AuditController) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format, err := audit.ParseFormat(q.Get("format"))
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	filter, errs := parseFilter(q)
	if errs.HasErrors() {
		renderError(w, r, c.log, errs)
		return
	}

	company := chi.URLParam(r, "company")
	var buf bytes.Buffer
	if _, err := c.services.Audit.Export(r.Context(), userctx.GetActor(r.Context()), company, filter, format, &buf); err != nil {
		renderError(w, r, c.log, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", company+"_audit_trail."+string(format)))
	_, _ = w.Write(buf.Bytes())
}

// parseFilter reads the audit filter from query parameters. from and to take
// a date or an RFC 3339 timestamp; a bare to date includes the whole day.
func parseFilter(q url.Values) (audit.Filter, models.ValidationErrors) {
	var errs models.ValidationErrors
	filter := audit.Filter{
		EntityType: q.Get("entity_type"),
		EntityID:   q.Get("entity_id"),
		User:       q.Get("user"),
		Action:     models.Action(strings.ToUpper(q.Get("action"))),
	}

	if v := q.Get("from"); v != "" {
		t, _, err := parseBound(v)
		if err != nil {
			errs = append(errs, models.ValidationError{Field: "from", Message: "from must be a date (YYYY-MM-DD) or timestamp"})
		}
		filter.Start = t
	}
	if v := q.Get("to"); v != "" {
		t, dateOnly, err := parseBound(v)
		if err != nil {
			errs = append(errs, models.ValidationError{Field: "to", Message: "to must be a date (YYYY-MM-DD) or timestamp"})
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.End = t
	}

	return filter, errs
}

func parseBound(v string) (time.Time, bool, error) {
	if t, err := models.ParseDate(v); err == nil {
		return t, true, nil
	}
	t, err := models.ParseTimestamp(v)
	return t, false, err
}
