package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountapp/accountapp/audit"
	"github.com/accountapp/accountapp/config"
	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/store"
)

func newAuditFixture(t *testing.T) (*Services, *audit.Manager) {
	t.Helper()
	dir := t.TempDir()

	st, err := store.NewFileStore(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	manager, err := audit.NewManager(dir, config.AuditConfig{RecoverCorrupt: true}, nil)
	require.NoError(t, err)
	tick := testNow
	manager.SetClock(func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	})

	require.NoError(t, st.CreateCompany(context.Background(), models.Company{Name: "Acme", CreatedAt: testNow}))

	svc := NewServices(st, manager, nil, nil, logging.Discard())
	return svc, manager
}

func TestAuditService_ListPaginates(t *testing.T) {
	svc, manager := newAuditFixture(t)
	for i := range 250 {
		_, err := manager.LogCreate("Acme", "priya", "client", fmt.Sprintf("C-%d", i), nil, "")
		require.NoError(t, err)
	}

	page, err := svc.Audit.List(context.Background(), "Acme", audit.Filter{}, 3, 100)
	require.NoError(t, err)

	assert.Len(t, page.Entries, 50)
	assert.Equal(t, 3, page.Page.TotalPages)
	assert.Equal(t, 250, page.Page.TotalRecords)
	assert.Equal(t, 201, page.Page.StartRecord)
	assert.False(t, page.Page.HasNext)
	// newest first, so the last page holds the oldest entries
	assert.Equal(t, "C-0", page.Entries[49].EntityID)
	assert.Equal(t, "Created client C-0", page.Entries[49].Summary)
}

func TestAuditService_ListFilters(t *testing.T) {
	svc, manager := newAuditFixture(t)
	_, err := manager.LogLogin("Acme", "priya", true, "")
	require.NoError(t, err)
	_, err = manager.LogLogin("Acme", "mallory", false, "")
	require.NoError(t, err)

	page, err := svc.Audit.List(context.Background(), "Acme", audit.Filter{Action: models.ActionLoginFailed}, 1, 25)
	require.NoError(t, err)

	require.Len(t, page.Entries, 1)
	assert.Equal(t, "mallory", page.Entries[0].User)
}

func TestAuditService_UnknownCompany(t *testing.T) {
	svc, _ := newAuditFixture(t)

	_, err := svc.Audit.List(context.Background(), "Ghost", audit.Filter{}, 1, 25)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAuditService_EntityHistory(t *testing.T) {
	svc, _ := newAuditFixture(t)
	actor := models.Actor{Username: "priya"}
	ctx := context.Background()

	require.NoError(t, svc.Documents.Put(ctx, actor, "Acme", "settings.json", json.RawMessage(`{"currency":"GBP"}`)))
	require.NoError(t, svc.Documents.Put(ctx, actor, "Acme", "settings.json", json.RawMessage(`{"currency":"EUR"}`)))

	history, err := svc.Audit.EntityHistory(ctx, "Acme", audit.EntityDocument, "settings.json")
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, models.ActionUpdate, history[0].Action)
	assert.Equal(t, "GBP", history[0].OldValues["currency"])
	assert.Equal(t, "EUR", history[0].NewValues["currency"])
	assert.Equal(t, models.ActionCreate, history[1].Action)
}

func TestAuditService_UserActivity(t *testing.T) {
	svc, manager := newAuditFixture(t)
	_, err := manager.LogLogin("Acme", "priya", true, "")
	require.NoError(t, err)
	_, err = manager.LogLogin("Acme", "sam", true, "")
	require.NoError(t, err)

	activity, err := svc.Audit.UserActivity(context.Background(), "Acme", "priya", 7)
	require.NoError(t, err)

	require.Len(t, activity, 1)
	assert.Equal(t, "priya", activity[0].User)
}

func TestAuditService_ExportRecordsExport(t *testing.T) {
	svc, manager := newAuditFixture(t)
	for i := range 3 {
		_, err := manager.LogCreate("Acme", "priya", "client", fmt.Sprintf("C-%d", i), nil, "")
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	n, err := svc.Audit.Export(context.Background(), models.Actor{Username: "auditor", IPAddress: "10.9.9.9"}, "Acme", audit.Filter{}, audit.FormatNDJSON, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))

	trail, err := manager.Trail("Acme")
	require.NoError(t, err)
	latest := trail.Entries(audit.Filter{Limit: 1})
	require.Len(t, latest, 1)
	assert.Equal(t, models.ActionExport, latest[0].Action)
	assert.Equal(t, "audit_trail", latest[0].EntityType)
	assert.Equal(t, "3_records", latest[0].EntityID)
	assert.Equal(t, "10.9.9.9", latest[0].IP())
}
