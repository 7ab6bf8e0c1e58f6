package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/accountapp/accountapp/audit"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/services"
)

var (
	auditFilter   audit.Filter
	auditAction   string
	auditPage     int
	auditPageSize int
	auditFormat   string
	auditOutput   string
	auditDays     int
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Query and export a company's audit trail",
}

var auditListCmd = &cobra.Command{
	Use:     "list COMPANY",
	Aliases: []string{"ls"},
	Short:   "List audit entries, most recent first",
	Long: `List audit entries, most recent first, one page at a time.

Examples:
  accountapp audit list "Acme Ltd"
  accountapp audit list "Acme Ltd" --action LOGIN_FAILED --page 2`,
	Args: cobra.ExactArgs(1),
	RunE: runAuditList,
}

var auditHistoryCmd = &cobra.Command{
	Use:   "history COMPANY ENTITY_TYPE ENTITY_ID",
	Short: "Show the recorded changes of one entity",
	Args:  cobra.ExactArgs(3),
	RunE:  runAuditHistory,
}

var auditActivityCmd = &cobra.Command{
	Use:   "activity COMPANY USER",
	Short: "Show what a user did recently",
	Args:  cobra.ExactArgs(2),
	RunE:  runAuditActivity,
}

var auditExportCmd = &cobra.Command{
	Use:   "export COMPANY",
	Short: "Export audit entries as JSON, NDJSON or CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditExport,
}

func init() {
	for _, c := range []*cobra.Command{auditListCmd, auditExportCmd} {
		c.Flags().StringVar(&auditFilter.EntityType, "entity-type", "", "Only entries for this entity type")
		c.Flags().StringVar(&auditFilter.EntityID, "entity-id", "", "Only entries for this entity")
		c.Flags().StringVar(&auditFilter.User, "by", "", "Only entries made by this user")
		c.Flags().StringVar(&auditAction, "action", "", "Only entries with this action (CREATE, UPDATE, ...)")
	}
	auditListCmd.Flags().IntVar(&auditPage, "page", 1, "Page number")
	auditListCmd.Flags().IntVar(&auditPageSize, "page-size", 0, "Entries per page (default from config)")
	auditExportCmd.Flags().StringVarP(&auditFormat, "format", "f", "json", "Output format: json, ndjson or csv")
	auditExportCmd.Flags().StringVarP(&auditOutput, "output", "o", "-", "Output file, - for stdout")
	auditActivityCmd.Flags().IntVar(&auditDays, "days", 7, "Number of days to look back")

	auditCmd.AddCommand(auditListCmd)
	auditCmd.AddCommand(auditHistoryCmd)
	auditCmd.AddCommand(auditActivityCmd)
	auditCmd.AddCommand(auditExportCmd)
}

func currentFilter() audit.Filter {
	f := auditFilter
	f.Action = models.Action(strings.ToUpper(auditAction))
	return f
}

func runAuditList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	pageSize := auditPageSize
	if pageSize <= 0 {
		pageSize = a.cfg.Pagination.PageSize
	}

	page, err := a.services.Audit.List(cmd.Context(), args[0], currentFilter(), auditPage, pageSize)
	if err != nil {
		return err
	}

	if err := printEntries(cmd.OutOrStdout(), page.Entries); err != nil {
		return err
	}
	if page.Page.TotalRecords == 0 {
		fmt.Fprintln(os.Stderr, "No records")
		return nil
	}
	fmt.Fprintf(os.Stderr, "Showing %d-%d of %d records (page %d of %d)\n",
		page.Page.StartRecord, page.Page.EndRecord, page.Page.TotalRecords, page.Page.PageNumber, page.Page.TotalPages)
	return nil
}

func runAuditHistory(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.services.Audit.EntityHistory(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return err
	}
	return printEntries(cmd.OutOrStdout(), entries)
}

func runAuditActivity(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.services.Audit.UserActivity(cmd.Context(), args[0], args[1], auditDays)
	if err != nil {
		return err
	}
	return printEntries(cmd.OutOrStdout(), entries)
}

func runAuditExport(cmd *cobra.Command, args []string) error {
	format, err := audit.ParseFormat(auditFormat)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if auditOutput != "-" {
		f, err := os.Create(auditOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	n, err := a.services.Audit.Export(cmd.Context(), cliActor(), args[0], currentFilter(), format, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Exported %d audit entries\n", n)
	return nil
}

func printEntries(out io.Writer, entries []services.AuditView) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tUSER\tACTION\tSUMMARY\tIP")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", models.FormatDateTime(e.Timestamp.Local()), e.User, e.Action, e.Summary, e.IP())
	}
	return w.Flush()
}
