package services

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/accountapp/accountapp/audit"
	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/metrics"
	"github.com/accountapp/accountapp/models"
	auditmocks "github.com/accountapp/accountapp/services/mocks"
	"github.com/accountapp/accountapp/store"
	storemocks "github.com/accountapp/accountapp/store/mocks"
)

// DocumentServiceTestSuite is a test suite for DocumentService
type DocumentServiceTestSuite struct {
	suite.Suite
	service   DocumentService
	metrics   *metrics.Metrics
	mockStore *storemocks.MockStore
	mockAudit *auditmocks.MockAuditRecorder
}

// SetupTest sets up the test suite before each test
func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockStore = storemocks.NewMockStore(suite.T())
	suite.mockAudit = auditmocks.NewMockAuditRecorder(suite.T())
	suite.metrics = metrics.New(prometheus.NewRegistry())

	suite.service = NewDocumentService(suite.mockStore, suite.mockAudit, suite.metrics, logging.Discard().WithField("component", "test"))
}

// loadReturns makes LoadJSON on filename yield content
func (suite *DocumentServiceTestSuite) loadReturns(filename, content string) {
	suite.mockStore.EXPECT().
		LoadJSON(mock.Anything, "Acme", filename, mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, v any) error {
			return json.Unmarshal([]byte(content), v)
		})
}

// TestPut_NewDocumentRecordsCreate tests that the first write of a document is a CREATE
func (suite *DocumentServiceTestSuite) TestPut_NewDocumentRecordsCreate() {
	suite.mockStore.EXPECT().Company(mock.Anything, "Acme").Return(&models.Company{Name: "Acme"}, nil)
	suite.mockStore.EXPECT().LoadJSON(mock.Anything, "Acme", "settings.json", mock.Anything).Return(store.ErrNotFound)
	suite.mockStore.EXPECT().SaveJSON(mock.Anything, "Acme", "settings.json", json.RawMessage(`{"currency":"GBP"}`)).Return(nil)
	suite.mockAudit.EXPECT().
		LogCreate("Acme", "priya", audit.EntityDocument, "settings.json", map[string]any{"currency": "GBP"}, "10.0.0.1").
		Return(models.AuditEntry{}, nil)

	err := suite.service.Put(context.Background(), testActor, "Acme", "settings.json", json.RawMessage(`{"currency":"GBP"}`))

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1.0, testutil.ToFloat64(suite.metrics.DocumentWritesTotal.WithLabelValues("settings.json")))
}

// TestPut_ExistingDocumentRecordsUpdate tests that overwriting records old and new values
func (suite *DocumentServiceTestSuite) TestPut_ExistingDocumentRecordsUpdate() {
	suite.mockStore.EXPECT().Company(mock.Anything, "Acme").Return(&models.Company{Name: "Acme"}, nil)
	suite.loadReturns("settings.json", `{"currency":"GBP"}`)
	suite.mockStore.EXPECT().SaveJSON(mock.Anything, "Acme", "settings.json", mock.Anything).Return(nil)
	suite.mockAudit.EXPECT().
		LogUpdate("Acme", "priya", audit.EntityDocument, "settings.json",
			map[string]any{"currency": "GBP"}, map[string]any{"currency": "EUR"}, "10.0.0.1").
		Return(models.AuditEntry{}, nil)

	err := suite.service.Put(context.Background(), testActor, "Acme", "settings.json", json.RawMessage(`{"currency":"EUR"}`))

	assert.NoError(suite.T(), err)
}

// TestPut_ListDocumentRecordsCounts tests that arrays are audited by record count
func (suite *DocumentServiceTestSuite) TestPut_ListDocumentRecordsCounts() {
	suite.mockStore.EXPECT().Company(mock.Anything, "Acme").Return(&models.Company{Name: "Acme"}, nil)
	suite.loadReturns(models.DocumentClients, `[]`)
	suite.mockStore.EXPECT().SaveJSON(mock.Anything, "Acme", models.DocumentClients, mock.Anything).Return(nil)
	suite.mockAudit.EXPECT().
		LogUpdate("Acme", "priya", audit.EntityDocument, models.DocumentClients,
			map[string]any{"records": 0}, map[string]any{"records": 2}, "10.0.0.1").
		Return(models.AuditEntry{}, nil)

	err := suite.service.Put(context.Background(), testActor, "Acme", models.DocumentClients, json.RawMessage(`[{"id":1},{"id":2}]`))

	assert.NoError(suite.T(), err)
}

// TestPut_InvalidJSON tests that malformed bodies are rejected before touching the store
func (suite *DocumentServiceTestSuite) TestPut_InvalidJSON() {
	err := suite.service.Put(context.Background(), testActor, "Acme", "settings.json", json.RawMessage(`{"currency":`))

	var decodeErr *store.DecodeError
	assert.ErrorAs(suite.T(), err, &decodeErr)
}

// TestPut_InvalidFilename tests the document name rules
func (suite *DocumentServiceTestSuite) TestPut_InvalidFilename() {
	for _, name := range []string{"", "../x.json", "notes.txt", ".json", store.AuditTrailFile} {
		err := suite.service.Put(context.Background(), testActor, "Acme", name, json.RawMessage(`{}`))
		var verrs models.ValidationErrors
		assert.ErrorAs(suite.T(), err, &verrs, name)
	}
}

// TestPut_UnknownCompany tests that documents cannot be written for unregistered companies
func (suite *DocumentServiceTestSuite) TestPut_UnknownCompany() {
	suite.mockStore.EXPECT().Company(mock.Anything, "Ghost").Return(nil, store.ErrNotFound)

	err := suite.service.Put(context.Background(), testActor, "Ghost", "settings.json", json.RawMessage(`{}`))

	assert.ErrorIs(suite.T(), err, store.ErrNotFound)
}

// TestExportCSV tests CSV output and the EXPORT entry
func (suite *DocumentServiceTestSuite) TestExportCSV() {
	suite.mockStore.EXPECT().Company(mock.Anything, "Acme").Return(&models.Company{Name: "Acme"}, nil)
	suite.loadReturns(models.DocumentInvoices, `[{"number":"INV-1","total":120.5},{"number":"INV-2","paid":true,"lines":[1,2]}]`)
	suite.mockAudit.EXPECT().LogExport("Acme", "priya", "invoices", 2, "10.0.0.1").Return(models.AuditEntry{}, nil)

	var buf bytes.Buffer
	n, err := suite.service.ExportCSV(context.Background(), testActor, "Acme", models.DocumentInvoices, &buf)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 2, n)
	assert.Equal(suite.T(), "lines,number,paid,total\n,INV-1,,120.5\n\"[1,2]\",INV-2,true,\n", buf.String())
}

// TestExportCSV_NotAList tests that object documents cannot be exported
func (suite *DocumentServiceTestSuite) TestExportCSV_NotAList() {
	suite.mockStore.EXPECT().Company(mock.Anything, "Acme").Return(&models.Company{Name: "Acme"}, nil)
	suite.mockStore.EXPECT().
		LoadJSON(mock.Anything, "Acme", "settings.json", mock.Anything).
		Return(&store.DecodeError{Company: "Acme", Filename: "settings.json"})

	_, err := suite.service.ExportCSV(context.Background(), testActor, "Acme", "settings.json", &bytes.Buffer{})

	assert.Error(suite.T(), err)
}

// TestList tests listing documents of an existing company
func (suite *DocumentServiceTestSuite) TestList() {
	suite.mockStore.EXPECT().Company(mock.Anything, "Acme").Return(&models.Company{Name: "Acme"}, nil)
	suite.mockStore.EXPECT().Documents(mock.Anything, "Acme").Return([]string{"clients.json", "meta.json"}, nil)

	docs, err := suite.service.List(context.Background(), "Acme")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), []string{"clients.json", "meta.json"}, docs)
}

// TestGet tests reading a document of an existing company
func (suite *DocumentServiceTestSuite) TestGet() {
	suite.mockStore.EXPECT().Company(mock.Anything, "Acme").Return(&models.Company{Name: "Acme"}, nil)
	suite.loadReturns("settings.json", `{"currency":"INR"}`)

	raw, err := suite.service.Get(context.Background(), "Acme", "settings.json")

	suite.Require().NoError(err)
	assert.JSONEq(suite.T(), `{"currency":"INR"}`, string(raw))
}

// TestGet_UnknownCompany tests that leftover files of an unregistered company are not served
func (suite *DocumentServiceTestSuite) TestGet_UnknownCompany() {
	suite.mockStore.EXPECT().Company(mock.Anything, "Ghost").Return(nil, store.ErrNotFound)

	_, err := suite.service.Get(context.Background(), "Ghost", models.DocumentMeta)

	assert.ErrorIs(suite.T(), err, store.ErrNotFound)
	suite.mockStore.AssertNotCalled(suite.T(), "LoadJSON", mock.Anything, "Ghost", models.DocumentMeta, mock.Anything)
}

// TestExportCSV_UnknownCompany tests that exports need a registered company
func (suite *DocumentServiceTestSuite) TestExportCSV_UnknownCompany() {
	suite.mockStore.EXPECT().Company(mock.Anything, "Ghost").Return(nil, store.ErrNotFound)

	_, err := suite.service.ExportCSV(context.Background(), testActor, "Ghost", models.DocumentInvoices, &bytes.Buffer{})

	assert.ErrorIs(suite.T(), err, store.ErrNotFound)
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
