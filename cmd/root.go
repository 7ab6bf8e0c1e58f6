// Package cmd implements the accountapp command line.
package cmd

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/accountapp/accountapp/config"
	"github.com/accountapp/accountapp/models"
)

// Version is set via ldflags at build time
var Version = "dev"

var (
	cfgFile   string
	dataDir   string
	useSQLite bool
	actorName string
)

var rootCmd = &cobra.Command{
	Use:   "accountapp",
	Short: "Company document store and audit trail for the accounting desktop app",
	Long: `accountapp keeps each company's JSON documents, its audit trail and backups.
It serves the local HTTP API used by the desktop frontend and offers the same
operations from the command line.`,
	Example: `  # Serve the local API
  accountapp serve

  # Register a company and inspect its audit trail
  accountapp company create "Acme Ltd" --city Leeds
  accountapp audit list "Acme Ltd" --action UPDATE

  # Move a files data directory into SQLite
  accountapp migrate --from ./data --to ./data/accountapp.db`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "data", Title: "Data Commands:"},
		&cobra.Group{ID: "admin", Title: "Admin Commands:"},
	)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default ./config.yaml or ./data/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&useSQLite, "sqlite", false, "Use the SQLite store (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&actorName, "user", "u", "", "User recorded in the audit trail (default: OS user)")

	companyCmd.GroupID = "data"
	docCmd.GroupID = "data"
	auditCmd.GroupID = "data"

	serveCmd.GroupID = "admin"
	backupCmd.GroupID = "admin"
	restoreCmd.GroupID = "admin"
	migrateCmd.GroupID = "admin"

	rootCmd.AddCommand(companyCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(migrateCmd)
}

// Execute runs the root command and reports any error on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadConfig applies the persistent flags on top of the configuration sources
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]any{}
	if cmd.Flags().Changed("data-dir") {
		overrides["data_dir"] = dataDir
	}
	if cmd.Flags().Changed("sqlite") {
		overrides["store.use_sqlite"] = useSQLite
	}
	return config.LoadWithOverrides(cfgFile, overrides)
}

// cliActor is the actor recorded for changes made from the command line
func cliActor() models.Actor {
	if actorName != "" {
		return models.Actor{Username: actorName}
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return models.Actor{Username: u.Username}
	}
	return models.Actor{Username: "cli"}
}
