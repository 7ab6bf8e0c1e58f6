package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/accountapp/accountapp/audit"
	"github.com/accountapp/accountapp/authenticator"
	"github.com/accountapp/accountapp/backup"
	"github.com/accountapp/accountapp/config"
	"github.com/accountapp/accountapp/metrics"
	"github.com/accountapp/accountapp/middleware"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/services"
	"github.com/accountapp/accountapp/store"
)

// APITestSuite drives the router against a files-backed store
type APITestSuite struct {
	suite.Suite
	router   http.Handler
	store    *store.FileStore
	manager  *audit.Manager
	registry *prometheus.Registry
}

// SetupTest sets up the test suite before each test
func (suite *APITestSuite) SetupTest() {
	dir := suite.T().TempDir()

	st, err := store.NewFileStore(dir, nil)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { _ = st.Close() })

	manager, err := audit.NewManager(dir, config.AuditConfig{RecoverCorrupt: true}, nil)
	suite.Require().NoError(err)

	suite.registry = prometheus.NewRegistry()
	m := metrics.New(suite.registry)
	manager.Instrument(m)

	srvs := services.NewServices(st, manager, authenticator.NewLocal(st), m, nil)
	runner := backup.NewRunner(st, config.BackupConfig{Dir: suite.T().TempDir()}, nil)
	ctrl := NewControllers(srvs, runner, 25, nil)

	suite.router = NewRouter(ctrl, RouterOptions{Metrics: m, Gatherer: suite.registry})
	suite.store = st
	suite.manager = manager
}

func (suite *APITestSuite) do(method, path, user, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	r.RemoteAddr = "192.0.2.10:50000"
	if user != "" {
		r.Header.Set(middleware.UserHeader, user)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, r)
	return w
}

func (suite *APITestSuite) createCompany(name string) {
	w := suite.do(http.MethodPost, "/companies", "priya", `{"company_name":"`+name+`","city":"Leeds"}`)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *APITestSuite) latestEntry(company string) models.AuditEntry {
	trail, err := suite.manager.Trail(company)
	suite.Require().NoError(err)
	entries := trail.Entries(audit.Filter{Limit: 1})
	suite.Require().Len(entries, 1)
	return entries[0]
}

// TestHealth tests the health endpoint
func (suite *APITestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "healthy")
}

// TestCompanies_CreateListShowDelete tests the company lifecycle
func (suite *APITestSuite) TestCompanies_CreateListShowDelete() {
	suite.createCompany("Acme")

	entry := suite.latestEntry("Acme")
	assert.Equal(suite.T(), models.ActionCreate, entry.Action)
	assert.Equal(suite.T(), "company", entry.EntityType)
	assert.Equal(suite.T(), "priya", entry.User)
	assert.Equal(suite.T(), "192.0.2.10", entry.IP())

	w := suite.do(http.MethodGet, "/companies", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var companies []models.Company
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &companies))
	suite.Require().Len(companies, 1)
	assert.Equal(suite.T(), "Leeds", companies[0].City)

	w = suite.do(http.MethodGet, "/companies/Acme", "", "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/companies", "priya", `{"company_name":"Acme"}`)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	w = suite.do(http.MethodDelete, "/companies/Acme", "priya", "")
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Equal(suite.T(), models.ActionDelete, suite.latestEntry("Acme").Action)

	w = suite.do(http.MethodGet, "/companies/Acme", "", "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCompanies_Validation tests 400 responses with field details
func (suite *APITestSuite) TestCompanies_Validation() {
	w := suite.do(http.MethodPost, "/companies", "priya", `{"company_name":"  "}`)
	suite.Require().Equal(http.StatusBadRequest, w.Code)

	var body errorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().NotEmpty(body.Fields)
	assert.Equal(suite.T(), "company_name", body.Fields[0].Field)

	w = suite.do(http.MethodPost, "/companies", "priya", `{"company_name":`)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestMutationsRequireUser tests that writes without X-Account-User are refused
func (suite *APITestSuite) TestMutationsRequireUser() {
	w := suite.do(http.MethodPost, "/companies", "", `{"company_name":"Acme"}`)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	suite.createCompany("Acme")
	w = suite.do(http.MethodPut, "/companies/Acme/documents/settings.json", "", `{}`)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	w = suite.do(http.MethodDelete, "/companies/Acme", "", "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestDocuments_PutGetAudit tests document writes and their CREATE/UPDATE entries
func (suite *APITestSuite) TestDocuments_PutGetAudit() {
	suite.createCompany("Acme")

	w := suite.do(http.MethodPut, "/companies/Acme/documents/settings.json", "priya", `{"currency":"GBP"}`)
	suite.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(suite.T(), models.ActionCreate, suite.latestEntry("Acme").Action)

	w = suite.do(http.MethodPut, "/companies/Acme/documents/settings.json", "priya", `{"currency":"EUR"}`)
	suite.Require().Equal(http.StatusNoContent, w.Code)
	entry := suite.latestEntry("Acme")
	assert.Equal(suite.T(), models.ActionUpdate, entry.Action)
	assert.Equal(suite.T(), "GBP", entry.OldValues["currency"])
	assert.Equal(suite.T(), "EUR", entry.NewValues["currency"])

	w = suite.do(http.MethodGet, "/companies/Acme/documents/settings.json", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"currency":"EUR"}`, w.Body.String())

	w = suite.do(http.MethodGet, "/companies/Acme/documents", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"settings.json"`)
	assert.NotContains(suite.T(), w.Body.String(), store.AuditTrailFile)
}

// TestDocuments_Errors tests error status mapping for documents
func (suite *APITestSuite) TestDocuments_Errors() {
	suite.createCompany("Acme")

	w := suite.do(http.MethodGet, "/companies/Acme/documents/missing.json", "", "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPut, "/companies/Acme/documents/settings.json", "priya", `{"currency":`)
	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodPut, "/companies/Acme/documents/notes.txt", "priya", `{}`)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPut, "/companies/Ghost/documents/settings.json", "priya", `{}`)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDocuments_ExportCSV tests CSV export of a list document
func (suite *APITestSuite) TestDocuments_ExportCSV() {
	suite.createCompany("Acme")
	w := suite.do(http.MethodPut, "/companies/Acme/documents/clients.json", "priya", `[{"name":"Bolt","city":"York"}]`)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodGet, "/companies/Acme/documents/clients.json/export.csv", "priya", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "city,name\nYork,Bolt\n", w.Body.String())

	entry := suite.latestEntry("Acme")
	assert.Equal(suite.T(), models.ActionExport, entry.Action)
	assert.Equal(suite.T(), "clients", entry.EntityType)
	assert.Equal(suite.T(), "1_records", entry.EntityID)
}

// TestLoginLogout tests login outcomes and their audit entries
func (suite *APITestSuite) TestLoginLogout() {
	suite.createCompany("Acme")

	w := suite.do(http.MethodPost, "/companies/Acme/login", "", `{"username":"admin","password":"wrong"}`)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), models.ActionLoginFailed, suite.latestEntry("Acme").Action)

	w = suite.do(http.MethodPost, "/companies/Acme/login", "", `{"username":"admin","password":"admin"}`)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var user models.User
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(suite.T(), "admin", user.Username)
	assert.Empty(suite.T(), user.Password)
	assert.Equal(suite.T(), models.ActionLoginSuccess, suite.latestEntry("Acme").Action)

	w = suite.do(http.MethodPost, "/companies/Acme/logout", "admin", "")
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Equal(suite.T(), models.ActionLogout, suite.latestEntry("Acme").Action)

	w = suite.do(http.MethodPost, "/companies/Ghost/login", "", `{"username":"admin","password":"admin"}`)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestAudit_ListHistoryExport tests the audit query routes
func (suite *APITestSuite) TestAudit_ListHistoryExport() {
	suite.createCompany("Acme")
	for _, body := range []string{`{"v":1}`, `{"v":2}`, `{"v":3}`} {
		w := suite.do(http.MethodPut, "/companies/Acme/documents/settings.json", "priya", body)
		suite.Require().Equal(http.StatusNoContent, w.Code)
	}

	w := suite.do(http.MethodGet, "/companies/Acme/audit?entity_type=document&page_size=2&page=2", "", "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var page services.AuditPage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(suite.T(), 3, page.Page.TotalRecords)
	assert.Equal(suite.T(), 2, page.Page.TotalPages)
	suite.Require().Len(page.Entries, 1)
	assert.Equal(suite.T(), models.ActionCreate, page.Entries[0].Action)
	assert.Equal(suite.T(), "Created document settings.json", page.Entries[0].Summary)

	w = suite.do(http.MethodGet, "/companies/Acme/audit/document/settings.json", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var history []services.AuditView
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(suite.T(), history, 3)

	w = suite.do(http.MethodGet, "/companies/Acme/users/priya/activity?days=1", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var activity []services.AuditView
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &activity))
	assert.Len(suite.T(), activity, 4)

	w = suite.do(http.MethodGet, "/companies/Acme/audit/export?format=csv&action=update", "auditor", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), "text/csv", w.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Len(suite.T(), lines, 3)
	assert.Equal(suite.T(), models.ActionExport, suite.latestEntry("Acme").Action)

	w = suite.do(http.MethodGet, "/companies/Acme/audit/export?format=xml", "", "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	w = suite.do(http.MethodGet, "/companies/Acme/audit?from=yesterday", "", "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	w = suite.do(http.MethodGet, "/companies/Acme/audit?page_size=1000", "", "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestBackup tests on-demand backups
func (suite *APITestSuite) TestBackup() {
	suite.createCompany("Acme")

	w := suite.do(http.MethodPost, "/companies/Acme/backup", "priya", "")
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var artifact backup.Artifact
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &artifact))
	assert.Equal(suite.T(), "Acme", artifact.Company)
	assert.FileExists(suite.T(), artifact.Path)

	w = suite.do(http.MethodPost, "/companies/Ghost/backup", "priya", "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestMetrics tests that requests are counted on the metrics endpoint
func (suite *APITestSuite) TestMetrics() {
	suite.do(http.MethodGet, "/companies", "", "")

	w := suite.do(http.MethodGet, "/metrics", "", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `accountapp_http_requests_total{method="GET",route="/companies`)
	assert.Contains(suite.T(), w.Body.String(), `status="200"`)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func TestParseFilter(t *testing.T) {
	filter, errs := parseFilter(map[string][]string{
		"action": {"login_failed"},
		"from":   {"2024-03-01"},
		"to":     {"2024-03-02"},
	})
	require.False(t, errs.HasErrors())
	assert.Equal(t, models.ActionLoginFailed, filter.Action)
	assert.Equal(t, 1, filter.Start.Day())
	assert.Equal(t, 2, filter.End.Day())
	assert.Equal(t, 23, filter.End.Hour())

	_, errs = parseFilter(map[string][]string{"to": {"soon"}})
	require.Len(t, errs, 1)
	assert.Equal(t, "to", errs[0].Field)
}
