package models

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"time"
)

// Company status values
const (
	CompanyStatusActive   = "Active"
	CompanyStatusInactive = "Inactive"
)

// InvalidCompanyDir is the directory used for names that cannot name one
const InvalidCompanyDir = "_invalid_name"

// CompanyDirName returns the directory name holding a company's files.
// Path separators become underscores; names that would resolve outside
// their own directory map to InvalidCompanyDir.
func CompanyDirName(name string) string {
	safe := strings.NewReplacer("/", "_", `\`, "_").Replace(strings.TrimSpace(name))
	if safe == "" || safe == "." || safe == ".." {
		return InvalidCompanyDir
	}
	return safe
}

// Company represents an entry in the company registry
type Company struct {
	Name      string    `json:"company_name"`
	Type      string    `json:"company_type"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	LogoPath  string    `json:"logo_path"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Extra holds any additional metadata supplied at creation time
	Extra map[string]any `json:"-"`
}

// CompanyForm represents the data submitted when creating a company
type CompanyForm struct {
	Name   string         `json:"company_name"`
	Type   string         `json:"company_type"`
	City   string         `json:"city"`
	State  string         `json:"state"`
	Status string         `json:"status"`
	Extra  map[string]any `json:"extra,omitempty"`
}

// Validate validates the company form data
func (f *CompanyForm) Validate() ValidationErrors {
	var errs ValidationErrors

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs = append(errs, ValidationError{Field: "company_name", Message: "Company name is required"})
	}
	if len(name) > 200 {
		errs = append(errs, ValidationError{Field: "company_name", Message: "Company name must be less than 200 characters"})
	}
	switch {
	case name == "":
		// already reported as required
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		errs = append(errs, ValidationError{Field: "company_name", Message: "Company name must not contain path separators"})
	case name == "." || name == "..":
		errs = append(errs, ValidationError{Field: "company_name", Message: "Company name must not be a relative directory"})
	case name == InvalidCompanyDir:
		errs = append(errs, ValidationError{Field: "company_name", Message: "Company name is reserved"})
	}

	return errs
}

// ToCompany converts the form into a registry entry stamped with now
func (f *CompanyForm) ToCompany(now time.Time) Company {
	c := Company{
		Name:      strings.TrimSpace(f.Name),
		Type:      f.Type,
		City:      f.City,
		State:     f.State,
		Status:    f.Status,
		CreatedAt: now,
		Extra:     f.Extra,
	}
	if c.Type == "" {
		c.Type = "Unknown"
	}
	if c.Status == "" {
		c.Status = CompanyStatusActive
	}
	return c
}

// MarshalJSON flattens Extra into the top-level object, known fields win
func (c Company) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+7)
	for k, v := range c.Extra {
		out[k] = v
	}
	out["company_name"] = c.Name
	out["company_type"] = c.Type
	out["city"] = c.City
	out["state"] = c.State
	out["logo_path"] = c.LogoPath
	out["status"] = c.Status
	out["created_at"] = c.CreatedAt.Format(time.RFC3339Nano)
	return json.Marshal(out)
}

// UnmarshalJSON reads known fields and keeps the rest in Extra
func (c *Company) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	str := func(key string) string {
		s, _ := raw[key].(string)
		delete(raw, key)
		return s
	}

	*c = Company{
		Name:     str("company_name"),
		Type:     str("company_type"),
		City:     str("city"),
		State:    str("state"),
		LogoPath: str("logo_path"),
		Status:   str("status"),
	}
	if ts := str("created_at"); ts != "" {
		if t, err := ParseTimestamp(ts); err == nil {
			c.CreatedAt = t
		}
	}
	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}
