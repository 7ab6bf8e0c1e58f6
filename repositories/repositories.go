package repositories

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a company or document row does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when inserting a row whose key already exists
	ErrDuplicate = errors.New("already exists")
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Documents DocumentRepository
	Companies CompanyRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Documents: NewDocumentRepository(db),
		Companies: NewCompanyRepository(db),
	}
}

// isUniqueViolation reports whether err is a primary key or unique constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
