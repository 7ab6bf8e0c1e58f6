package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/services"
	"github.com/accountapp/accountapp/userctx"
)

// loginRequest is the body of POST /companies/{company}/login
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthController handles company login and logout
type AuthController struct {
	services *services.Services
	log      *logrus.Entry
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services, log *logrus.Entry) *AuthController {
	return &AuthController{
		services: services,
		log:      log,
	}
}

// Login handles POST /companies/{company}/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	actor := userctx.GetActor(r.Context())
	user, err := c.services.Auth.Login(r.Context(), chi.URLParam(r, "company"), req.Username, req.Password, actor.IPAddress)
	if err != nil {
		renderError(w, r, c.log, err)
		return
	}

	renderJSON(w, http.StatusOK, user)
}

// Logout handles POST /companies/{company}/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Auth.Logout(r.Context(), chi.URLParam(r, "company"), userctx.GetActor(r.Context())); err != nil {
		renderError(w, r, c.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
