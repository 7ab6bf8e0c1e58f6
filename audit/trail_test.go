package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountapp/accountapp/models"
)

// stepClock returns a clock that advances one minute per call
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Minute)
		return t
	}
}

var base = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func openTrail(t *testing.T, dir string, opts ...Option) *Trail {
	opts = append([]Option{WithClock(stepClock(base))}, opts...)
	trail, err := Open(dir, "Acme", opts...)
	require.NoError(t, err)
	return trail
}

func readFile(t *testing.T, path string) []map[string]any {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	return raw
}

func TestOpen_MissingFile(t *testing.T) {
	dir := t.TempDir()
	trail, err := Open(dir, "Acme")
	require.NoError(t, err)

	assert.Equal(t, 0, trail.Len())
	assert.Equal(t, "Acme", trail.Company())
	assert.Equal(t, filepath.Join(dir, "companies", "Acme", FileName), trail.Path())
	assert.Empty(t, trail.Entries(Filter{}))
	assert.NoFileExists(t, trail.Path())
}

func TestOpen_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir, "Acme")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`[{"timestamp": `), 0644))

	trail, err := Open(dir, "Acme")
	assert.ErrorIs(t, err, ErrCorrupt)
	require.NotNil(t, trail)
	assert.Equal(t, 0, trail.Len())
}

func TestTrail_LogPersists(t *testing.T) {
	dir := t.TempDir()
	trail := openTrail(t, dir)

	entry, err := trail.Log("priya", models.ActionCreate, "invoice", "INV-001", nil, map[string]any{"total": 100}, "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, base, entry.Timestamp)
	assert.Equal(t, "Acme", entry.Company)

	raw := readFile(t, trail.Path())
	require.Len(t, raw, 1)
	assert.Equal(t, "Acme", raw[0]["company_name"])
	assert.Equal(t, "priya", raw[0]["user_name"])
	assert.Equal(t, "CREATE", raw[0]["action"])
	assert.Equal(t, "10.0.0.7", raw[0]["ip_address"])
	assert.Equal(t, map[string]any{}, raw[0]["old_values"])

	// A fresh trail reads the same entries back
	reopened := openTrail(t, dir)
	require.Equal(t, 1, reopened.Len())
	got := reopened.Entries(Filter{})[0]
	assert.True(t, entry.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, entry.EntityID, got.EntityID)
	assert.Equal(t, "10.0.0.7", got.IP())
}

func TestTrail_LogRequiresAction(t *testing.T) {
	trail := openTrail(t, t.TempDir())

	_, err := trail.Log("priya", "", "invoice", "1", nil, nil, "")
	assert.Error(t, err)
	_, err = trail.Log("priya", models.ActionCreate, "", "1", nil, nil, "")
	assert.Error(t, err)
	assert.Equal(t, 0, trail.Len())
	assert.NoFileExists(t, trail.Path())
}

func TestTrail_EntriesMostRecentFirst(t *testing.T) {
	trail := openTrail(t, t.TempDir())

	for i := 0; i < 5; i++ {
		_, err := trail.Log("priya", models.ActionUpdate, "invoice", fmt.Sprint(i), nil, nil, "")
		require.NoError(t, err)
	}

	entries := trail.Entries(Filter{})
	require.Len(t, entries, 5)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprint(4-i), e.EntityID)
		if i > 0 {
			assert.True(t, e.Timestamp.Before(entries[i-1].Timestamp))
		}
	}
}

func TestTrail_EntriesFilters(t *testing.T) {
	trail := openTrail(t, t.TempDir())

	log := func(user string, action models.Action, entityType, id string) {
		_, err := trail.Log(user, action, entityType, id, nil, nil, "")
		require.NoError(t, err)
	}
	log("priya", models.ActionCreate, "invoice", "1")  // 10:00
	log("priya", models.ActionUpdate, "invoice", "1")  // 10:01
	log("arjun", models.ActionCreate, "invoice", "2")  // 10:02
	log("arjun", models.ActionCreate, "client", "1")   // 10:03
	log("priya", models.ActionDelete, "invoice", "1")  // 10:04
	log("arjun", models.ActionUpdate, "invoice", "12") // 10:05

	t.Run("entity type and id", func(t *testing.T) {
		entries := trail.Entries(Filter{EntityType: "invoice", EntityID: "1"})
		require.Len(t, entries, 3)
		for _, e := range entries {
			assert.Equal(t, "invoice", e.EntityType)
			assert.Equal(t, "1", e.EntityID)
		}
		assert.Equal(t, models.ActionDelete, entries[0].Action)
	})

	t.Run("user and action", func(t *testing.T) {
		entries := trail.Entries(Filter{User: "arjun", Action: models.ActionCreate})
		require.Len(t, entries, 2)
		assert.Equal(t, "client", entries[0].EntityType)
	})

	t.Run("inclusive range", func(t *testing.T) {
		entries := trail.Entries(Filter{
			Start: base.Add(1 * time.Minute),
			End:   base.Add(3 * time.Minute),
		})
		require.Len(t, entries, 3)
		assert.Equal(t, base.Add(3*time.Minute), entries[0].Timestamp)
		assert.Equal(t, base.Add(1*time.Minute), entries[2].Timestamp)
	})

	t.Run("one sided range", func(t *testing.T) {
		assert.Len(t, trail.Entries(Filter{Start: base.Add(4 * time.Minute)}), 2)
		assert.Len(t, trail.Entries(Filter{End: base.Add(1 * time.Minute)}), 2)
	})

	t.Run("limit", func(t *testing.T) {
		entries := trail.Entries(Filter{Limit: 2})
		require.Len(t, entries, 2)
		assert.Equal(t, "12", entries[0].EntityID)
		assert.Len(t, trail.Entries(Filter{Limit: -1}), 6)
	})

	t.Run("entity history", func(t *testing.T) {
		assert.Len(t, trail.EntityHistory("invoice", "1"), 3)
		assert.Empty(t, trail.EntityHistory("invoice", "99"))
	})
}

func TestTrail_DefaultLimit(t *testing.T) {
	trail := openTrail(t, t.TempDir())
	for i := 0; i < DefaultLimit+5; i++ {
		_, err := trail.Log("priya", models.ActionCreate, "client", fmt.Sprint(i), nil, nil, "")
		require.NoError(t, err)
	}

	assert.Len(t, trail.Entries(Filter{}), DefaultLimit)
	assert.Len(t, trail.EntityHistory("client", "3"), 1)
}

func TestTrail_UserActivity(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	// Entries ten and two days old
	old := openTrail(t, dir, WithClock(func() time.Time { return now.AddDate(0, 0, -10) }))
	_, err := old.Log("priya", models.ActionCreate, "invoice", "1", nil, nil, "")
	require.NoError(t, err)

	recent := openTrail(t, dir, WithClock(func() time.Time { return now.AddDate(0, 0, -2) }))
	_, err = recent.Log("priya", models.ActionUpdate, "invoice", "1", nil, nil, "")
	require.NoError(t, err)
	_, err = recent.Log("arjun", models.ActionUpdate, "invoice", "1", nil, nil, "")
	require.NoError(t, err)

	trail := openTrail(t, dir, WithClock(func() time.Time { return now }))
	assert.Len(t, trail.UserActivity("priya", 7), 1)
	assert.Len(t, trail.UserActivity("priya", 30), 2)
	assert.Len(t, trail.UserActivity("arjun", 7), 1)
}

func TestTrail_Retention(t *testing.T) {
	trail := openTrail(t, t.TempDir(), WithRetention(5))

	for i := 0; i < 8; i++ {
		_, err := trail.Log("priya", models.ActionCreate, "client", fmt.Sprint(i), nil, nil, "")
		require.NoError(t, err)
	}

	assert.Equal(t, 5, trail.Len())
	raw := readFile(t, trail.Path())
	require.Len(t, raw, 5)
	assert.Equal(t, "3", raw[0]["entity_id"])
	assert.Equal(t, "7", raw[4]["entity_id"])
}

func TestTrail_DefaultRetentionDropsOldest(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir, "Acme")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	existing := make([]models.AuditEntry, DefaultRetention)
	for i := range existing {
		existing[i] = models.AuditEntry{
			Timestamp:  base.Add(time.Duration(i) * time.Second),
			Company:    "Acme",
			User:       "priya",
			Action:     models.ActionCreate,
			EntityType: "client",
			EntityID:   fmt.Sprint(i),
			OldValues:  map[string]any{},
			NewValues:  map[string]any{},
		}
	}
	data, err := json.Marshal(existing)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	trail := openTrail(t, dir, WithClock(func() time.Time { return base.Add(24 * time.Hour) }))
	require.Equal(t, DefaultRetention, trail.Len())

	_, err = trail.Log("priya", models.ActionCreate, "client", "new", nil, nil, "")
	require.NoError(t, err)

	raw := readFile(t, path)
	require.Len(t, raw, DefaultRetention)
	assert.Equal(t, "1", raw[0]["entity_id"])
	assert.Equal(t, "new", raw[len(raw)-1]["entity_id"])
}

func TestOpen_LegacyFile(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir, "Acme")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	legacy := `[
  {
    "timestamp": "2024-02-10T14:05:09.123456",
    "company_name": "Acme",
    "user_name": "admin",
    "action": "UPDATE",
    "entity_type": "invoice",
    "entity_id": "INV-7",
    "old_values": {"status": "draft"},
    "new_values": {"status": "sent"},
    "ip_address": null
  }
]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	trail, err := Open(dir, "Acme")
	require.NoError(t, err)
	require.Equal(t, 1, trail.Len())

	e := trail.Entries(Filter{})[0]
	assert.Equal(t, "admin", e.User)
	assert.Equal(t, time.Date(2024, 2, 10, 14, 5, 9, 123456000, time.Local), e.Timestamp)
	assert.Nil(t, e.IPAddress)
	assert.Equal(t, "Updated invoice INV-7: status: draft → sent", e.Summary())
}
