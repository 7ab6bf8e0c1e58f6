package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/accountapp/accountapp/importer"
	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/store"
)

var (
	migrateFrom string
	migrateTo   string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import a files data directory into a SQLite store",
	Long: `Import the company registry and every company document from a files data
directory into a SQLite database. Companies already in the database are kept
and their documents overwritten. Audit trails stay on disk.

Examples:
  accountapp migrate
  accountapp migrate --from /backups/data --to ./data/accountapp.db`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "Files data directory (default: data_dir)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "SQLite database (default: store.sqlite_path)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	from := cfg.DataDir
	if migrateFrom != "" {
		from = migrateFrom
	}
	to := cfg.Store.SQLitePath
	if migrateTo != "" {
		to = migrateTo
	}

	if _, err := os.Stat(from); err != nil {
		return fmt.Errorf("reading data directory: %w", err)
	}

	st, err := store.OpenSQLite(to, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	report, err := importer.New(os.DirFS(from), st, logger).Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d companies (%d already present) and %d documents into %s\n",
		report.Companies, report.ExistingCompanies, report.Documents, to)
	for _, f := range report.Failures {
		fmt.Fprintf(os.Stderr, "  failed: %s: %s\n", f.Path, f.Err)
	}
	if len(report.Failures) > 0 {
		return fmt.Errorf("%d items could not be imported", len(report.Failures))
	}
	return nil
}
