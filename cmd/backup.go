package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/accountapp/accountapp/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup [COMPANY...]",
	Short: "Back up companies now",
	Long: `Write a backup artifact for each named company, or for every registered
company when none is named. Artifacts go to backup.dir and are uploaded to S3
when backup.s3_bucket is configured.`,
	RunE: runBackup,
}

var restoreCmd = &cobra.Command{
	Use:   "restore ARTIFACT",
	Short: "Restore a backup artifact",
	Long: `Restore a backup artifact written by the backup command. With the files
store this is a <company>.zip archive; with the SQLite store it is a database
file, which replaces the current database after an integrity check.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func runBackup(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	runner, err := newBackupRunner(cmd.Context(), a)
	if err != nil {
		return err
	}

	var result backup.Result
	var runErr error
	if len(args) == 0 {
		result, runErr = runner.RunOnce(cmd.Context())
	} else {
		for _, company := range args {
			artifact, err := runner.BackupCompany(cmd.Context(), company)
			if err != nil {
				result.Failed = append(result.Failed, company)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			result.Artifacts = append(result.Artifacts, artifact)
		}
		if len(result.Failed) > 0 {
			runErr = fmt.Errorf("%d of %d backups failed", len(result.Failed), len(args))
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPANY\tPATH\tREMOTE")
	for _, artifact := range result.Artifacts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", artifact.Company, artifact.Path, artifact.RemoteKey)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	return runErr
}

func runRestore(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Restore(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("restoring %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", args[0])
	return nil
}
