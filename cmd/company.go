package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/accountapp/accountapp/models"
)

var companyForm models.CompanyForm

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage registered companies",
}

var companyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered companies",
	Args:    cobra.NoArgs,
	RunE:    runCompanyList,
}

var companyCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Register a company and create its default documents",
	Long: `Register a company and create its default documents: meta, clients,
invoices, expenses, the chart of accounts and an admin user (password "admin").

Examples:
  accountapp company create "Acme Ltd" --type "Private Limited" --city Leeds`,
	Args: cobra.ExactArgs(1),
	RunE: runCompanyCreate,
}

var companyDeleteCmd = &cobra.Command{
	Use:     "delete NAME",
	Aliases: []string{"rm"},
	Short:   "Delete a company and all of its documents",
	Args:    cobra.ExactArgs(1),
	RunE:    runCompanyDelete,
}

func init() {
	companyCreateCmd.Flags().StringVar(&companyForm.Type, "type", "", "Company type")
	companyCreateCmd.Flags().StringVar(&companyForm.City, "city", "", "City")
	companyCreateCmd.Flags().StringVar(&companyForm.State, "state", "", "State")
	companyCreateCmd.Flags().StringVar(&companyForm.Status, "status", models.CompanyStatusActive, "Status")

	companyCmd.AddCommand(companyListCmd)
	companyCmd.AddCommand(companyCreateCmd)
	companyCmd.AddCommand(companyDeleteCmd)
}

func runCompanyList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	companies, err := a.services.Companies.GetAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing companies: %w", err)
	}

	if len(companies) == 0 {
		fmt.Fprintln(os.Stderr, "No companies registered.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tCITY\tSTATUS\tCREATED")
	for _, c := range companies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.Name, c.Type, c.City, c.Status, models.FormatDate(c.CreatedAt))
	}
	return w.Flush()
}

func runCompanyCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	form := companyForm
	form.Name = args[0]
	company, err := a.services.Companies.Create(cmd.Context(), cliActor(), &form)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created company %q\n", company.Name)
	return nil
}

func runCompanyDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.services.Companies.Delete(cmd.Context(), cliActor(), args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted company %q\n", args[0])
	return nil
}
