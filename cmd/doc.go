package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var docInput string

var docCmd = &cobra.Command{
	Use:     "doc",
	Aliases: []string{"document"},
	Short:   "Read and write company documents",
}

var docListCmd = &cobra.Command{
	Use:     "list COMPANY",
	Aliases: []string{"ls"},
	Short:   "List a company's documents",
	Args:    cobra.ExactArgs(1),
	RunE:    runDocList,
}

var docGetCmd = &cobra.Command{
	Use:   "get COMPANY FILENAME",
	Short: "Print a document",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocGet,
}

var docPutCmd = &cobra.Command{
	Use:   "put COMPANY FILENAME",
	Short: "Store a document read from a file or stdin",
	Long: `Store a document and record the change in the company's audit trail.

Examples:
  accountapp doc put "Acme Ltd" clients.json --file clients.json
  cat settings.json | accountapp doc put "Acme Ltd" settings.json`,
	Args: cobra.ExactArgs(2),
	RunE: runDocPut,
}

var docExportCmd = &cobra.Command{
	Use:   "export COMPANY FILENAME",
	Short: "Write a list document as CSV to stdout",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocExport,
}

func init() {
	docPutCmd.Flags().StringVarP(&docInput, "file", "f", "-", "File to read, - for stdin")

	docCmd.AddCommand(docListCmd)
	docCmd.AddCommand(docGetCmd)
	docCmd.AddCommand(docPutCmd)
	docCmd.AddCommand(docExportCmd)
}

func runDocList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	docs, err := a.services.Documents.List(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	for _, d := range docs {
		fmt.Fprintln(cmd.OutOrStdout(), d)
	}
	return nil
}

func runDocGet(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := a.services.Documents.Get(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, doc, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(cmd.OutOrStdout())
	return err
}

func runDocPut(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if docInput == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(docInput)
	}
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.services.Documents.Put(cmd.Context(), cliActor(), args[0], args[1], json.RawMessage(data)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Saved %s for %q\n", args[1], args[0])
	return nil
}

func runDocExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.services.Documents.ExportCSV(cmd.Context(), cliActor(), args[0], args[1], cmd.OutOrStdout())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Exported %d records\n", n)
	return nil
}
