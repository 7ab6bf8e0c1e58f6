package audit

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/accountapp/accountapp/models"
)

// Format is an export encoding
type Format string

const (
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatCSV    Format = "csv"
)

// ParseFormat validates an export format name; empty means JSON
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatNDJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the HTTP content type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatNDJSON:
		return "application/x-ndjson"
	case FormatCSV:
		return "text/csv"
	default:
		return "application/json"
	}
}

var csvHeader = []string{
	"timestamp", "company_name", "user_name", "action", "entity_type",
	"entity_id", "summary", "old_values", "new_values", "ip_address",
}

// Export writes entries to w in the given format
func Export(w io.Writer, entries []models.AuditEntry, format Format) error {
	switch format {
	case FormatJSON, "":
		if entries == nil {
			entries = []models.AuditEntry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)

	case FormatNDJSON:
		enc := json.NewEncoder(w)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil

	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
		for _, e := range entries {
			if err := cw.Write(csvRecord(e)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func csvRecord(e models.AuditEntry) []string {
	return []string{
		e.Timestamp.Format(time.RFC3339),
		e.Company,
		e.User,
		string(e.Action),
		e.EntityType,
		e.EntityID,
		e.Summary(),
		valuesJSON(e.OldValues),
		valuesJSON(e.NewValues),
		e.IP(),
	}
}

func valuesJSON(v map[string]any) string {
	if len(v) == 0 {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
