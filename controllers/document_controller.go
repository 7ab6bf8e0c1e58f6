package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/services"
	"github.com/accountapp/accountapp/userctx"
)

// DocumentController handles per-company document requests
type DocumentController struct {
	services *services.Services
	log      *logrus.Entry
}

// NewDocumentController creates a new document controller
func NewDocumentController(services *services.Services, log *logrus.Entry) *DocumentController {
	return &DocumentController{
		services: services,
		log:      log,
	}
}

// Index handles GET /companies/{company}/documents
func (c *DocumentController) Index(w http.ResponseWriter, r *http.Request) {
	docs, err := c.services.Documents.List(r.Context(), chi.URLParam(r, "company"))
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}
	if docs == nil {
		docs = []string{}
	}

	renderJSON(w, http.StatusOK, docs)
}

// Show handles GET /companies/{company}/documents/{filename}
func (c *DocumentController) Show(w http.ResponseWriter, r *http.Request) {
	doc, err := c.services.Documents.Get(r.Context(), chi.URLParam(r, "company"), chi.URLParam(r, "filename"))
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

// Update handles PUT /companies/{company}/documents/{filename}. The body is
// stored as sent.
func (c *DocumentController) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		badRequest(w, "Failed to read request body: "+err.Error())
		return
	}

	err = c.services.Documents.Put(r.Context(), userctx.GetActor(r.Context()),
		chi.URLParam(r, "company"), chi.URLParam(r, "filename"), json.RawMessage(body))
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportCSV handles GET /companies/{company}/documents/{filename}/export.csv
func (c *DocumentController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	company := chi.URLParam(r, "company")
	filename := chi.URLParam(r, "filename")

	var buf bytes.Buffer
	if _, err := c.services.Documents.ExportCSV(r.Context(), userctx.GetActor(r.Context()), company, filename, &buf); err != nil {
		renderError(w, r, c.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", strings.TrimSuffix(filename, ".json")+".csv"))
	_, _ = w.Write(buf.Bytes())
}
