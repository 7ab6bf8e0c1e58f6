package models

// User represents an entry in a company's users.json document
type User struct {
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password"` // bcrypt hash, or hex SHA-256 for accounts created by older releases
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// Account is a chart-of-accounts root entry seeded for every new company
type Account struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Parent *string `json:"parent"`
}

// DefaultAccounts returns the root accounts every company starts with
func DefaultAccounts() []Account {
	return []Account{
		{Code: "1000", Name: "Assets", Type: "asset"},
		{Code: "2000", Name: "Liabilities", Type: "liability"},
		{Code: "3000", Name: "Equity", Type: "equity"},
		{Code: "4000", Name: "Revenue", Type: "revenue"},
		{Code: "5000", Name: "Expenses", Type: "expense"},
	}
}

// Well-known per-company document names
const (
	DocumentMeta     = "meta.json"
	DocumentClients  = "clients.json"
	DocumentInvoices = "invoices.json"
	DocumentExpenses = "expenses.json"
	DocumentAccounts = "accounts.json"
	DocumentUsers    = "users.json"
)

// Actor identifies who performed a request and from where
type Actor struct {
	Username  string `json:"username"`
	IPAddress string `json:"ip_address,omitempty"`
}
