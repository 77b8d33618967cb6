// Package report handles the summary and CSV export commands.
package report

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jbqneto/financial-flow/cmd/root"
	"github.com/jbqneto/financial-flow/internal/models"
	"github.com/jbqneto/financial-flow/internal/report"
)

var exportOutput string

// Cmd represents the report command group.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the ledger and export it",
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals, per-category spending and monthly breakdown",
	RunE:  summaryFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as CSV",
	RunE:  exportFunc,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	Cmd.AddCommand(summaryCmd)
	Cmd.AddCommand(exportCmd)
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	s, _, err := root.OpenSession()
	if err != nil {
		return err
	}

	summary := report.Summarize(s.Transactions())

	fmt.Printf("Income:   %s\n", summary.Income)
	fmt.Printf("Expenses: %s\n", summary.Expenses)
	fmt.Printf("Balance:  %s\n\n", summary.Balance)

	if len(summary.ByCategory) > 0 {
		fmt.Println("Expenses by category:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		categories := make([]models.Category, 0, len(summary.ByCategory))
		for category := range summary.ByCategory {
			categories = append(categories, category)
		}
		sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
		for _, category := range categories {
			fmt.Fprintf(w, "  %s\t%s\n", category, summary.ByCategory[category])
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Println()
	}

	if len(summary.Monthly) > 0 {
		fmt.Println("Monthly:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  MONTH\tINCOME\tEXPENSES\tBALANCE")
		for _, month := range summary.Monthly {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", month.Month, month.Income, month.Expenses, month.Balance)
		}
		return w.Flush()
	}
	return nil
}

func exportFunc(cmd *cobra.Command, args []string) error {
	s, _, err := root.OpenSession()
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOutput, err)
		}
		defer f.Close()
		out = f
	}

	if err := report.WriteTransactionsCSV(out, s.Transactions()); err != nil {
		return err
	}
	if exportOutput != "" {
		root.Log.WithField("file", exportOutput).Info("Exported ledger")
	}
	return nil
}
