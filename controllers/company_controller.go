package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/services"
	"github.com/accountapp/accountapp/userctx"
)

// CompanyController handles company registry requests
type CompanyController struct {
	services *services.Services
	log      *logrus.Entry
}

// NewCompanyController creates a new company controller
func NewCompanyController(services *services.Services, log *logrus.Entry) *CompanyController {
	return &CompanyController{
		services: services,
		log:      log,
	}
}

// Index handles GET /companies
func (c *CompanyController) Index(w http.ResponseWriter, r *http.Request) {
	companies, err := c.services.Companies.GetAll(r.Context())
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}
	if companies == nil {
		companies = []models.Company{}
	}

	renderJSON(w, http.StatusOK, companies)
}

// Create handles POST /companies
func (c *CompanyController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.CompanyForm
	if !decodeBody(w, r, &form) {
		return
	}

	company, err := c.services.Companies.Create(r.Context(), userctx.GetActor(r.Context()), &form)
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}

	renderJSON(w, http.StatusCreated, company)
}

// Show handles GET /companies/{company}
func (c *CompanyController) Show(w http.ResponseWriter, r *http.Request) {
	company, err := c.services.Companies.Get(r.Context(), chi.URLParam(r, "company"))
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}

	renderJSON(w, http.StatusOK, company)
}

// Delete handles DELETE /companies/{company}
func (c *CompanyController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Companies.Delete(r.Context(), userctx.GetActor(r.Context()), chi.URLParam(r, "company")); err != nil {
		renderError(w, r, c.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
