package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Action represents the type of action recorded in the audit trail
type Action string

const (
	ActionCreate       Action = "CREATE"
	ActionUpdate       Action = "UPDATE"
	ActionDelete       Action = "DELETE"
	ActionLoginSuccess Action = "LOGIN_SUCCESS"
	ActionLoginFailed  Action = "LOGIN_FAILED"
	ActionLogout       Action = "LOGOUT"
	ActionExport       Action = "EXPORT"
)

// IsKnown reports whether a is one of the actions the application emits.
// Other non-empty actions are still accepted by the audit trail.
func (a Action) IsKnown() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete,
		ActionLoginSuccess, ActionLoginFailed, ActionLogout, ActionExport:
		return true
	}
	return false
}

// AuditEntry represents a single change record in a company's audit trail
type AuditEntry struct {
	Timestamp  time.Time      `json:"timestamp"`
	Company    string         `json:"company_name"`
	User       string         `json:"user_name"`
	Action     Action         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	OldValues  map[string]any `json:"old_values"`
	NewValues  map[string]any `json:"new_values"`
	IPAddress  *string        `json:"ip_address"`
}

// NewAuditEntry creates an audit entry stamped with now().
func NewAuditEntry(
	company, user string,
	action Action,
	entityType, entityID string,
	oldValues, newValues map[string]any,
	ipAddress string,
	now func() time.Time,
) (AuditEntry, error) {
	if action == "" {
		return AuditEntry{}, errors.New("action is required")
	}
	if entityType == "" {
		return AuditEntry{}, errors.New("entity type is required")
	}
	if now == nil {
		now = time.Now
	}
	if oldValues == nil {
		oldValues = map[string]any{}
	}
	if newValues == nil {
		newValues = map[string]any{}
	}

	entry := AuditEntry{
		Timestamp:  now(),
		Company:    company,
		User:       user,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValues:  oldValues,
		NewValues:  newValues,
	}
	if ipAddress != "" {
		entry.IPAddress = &ipAddress
	}
	return entry, nil
}

// IP returns the recorded IP address or an empty string
func (e AuditEntry) IP() string {
	if e.IPAddress == nil {
		return ""
	}
	return *e.IPAddress
}

// Summary returns a human-readable description of the change
func (e AuditEntry) Summary() string {
	switch e.Action {
	case ActionCreate:
		return fmt.Sprintf("Created %s %s", e.EntityType, e.EntityID)
	case ActionDelete:
		return fmt.Sprintf("Deleted %s %s", e.EntityType, e.EntityID)
	case ActionUpdate:
		keys := make([]string, 0, len(e.NewValues))
		for k := range e.NewValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var changes []string
		for _, k := range keys {
			old, ok := e.OldValues[k]
			if !ok || reflect.DeepEqual(old, e.NewValues[k]) {
				continue
			}
			changes = append(changes, fmt.Sprintf("%s: %s → %s", k, formatValue(old), formatValue(e.NewValues[k])))
		}
		return fmt.Sprintf("Updated %s %s: %s", e.EntityType, e.EntityID, strings.Join(changes, ", "))
	default:
		return fmt.Sprintf("%s on %s %s", e.Action, e.EntityType, e.EntityID)
	}
}

// formatValue renders scalars plainly and falls back to JSON for composites
func formatValue(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// timestampLayouts are tried in order when reading entries from disk.
// Older trails were written without a zone offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses an ISO-8601 timestamp with or without zone offset
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// UnmarshalJSON accepts both the current keys and the short company/user aliases
func (e *AuditEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Timestamp  string         `json:"timestamp"`
		Company    string         `json:"company_name"`
		CompanyAlt string         `json:"company"`
		User       string         `json:"user_name"`
		UserAlt    string         `json:"user"`
		Action     Action         `json:"action"`
		EntityType string         `json:"entity_type"`
		EntityID   any            `json:"entity_id"`
		OldValues  map[string]any `json:"old_values"`
		NewValues  map[string]any `json:"new_values"`
		IPAddress  *string        `json:"ip_address"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ts, err := ParseTimestamp(raw.Timestamp)
	if err != nil {
		return err
	}

	*e = AuditEntry{
		Timestamp:  ts,
		Company:    firstNonEmpty(raw.Company, raw.CompanyAlt),
		User:       firstNonEmpty(raw.User, raw.UserAlt),
		Action:     raw.Action,
		EntityType: raw.EntityType,
		EntityID:   cast.ToString(raw.EntityID),
		OldValues:  raw.OldValues,
		NewValues:  raw.NewValues,
		IPAddress:  raw.IPAddress,
	}
	if e.OldValues == nil {
		e.OldValues = map[string]any{}
	}
	if e.NewValues == nil {
		e.NewValues = map[string]any{}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
