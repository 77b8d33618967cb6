// Package ledger handles commands that inspect and edit individual
// transactions.
package ledger

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jbqneto/financial-flow/cmd/root"
	"github.com/jbqneto/financial-flow/internal/dateutils"
	"github.com/jbqneto/financial-flow/internal/models"
)

var (
	addDate        string
	addDescription string
	addAmount      string
	addType        string
	addCategory    string
)

// Cmd represents the ledger command group.
var Cmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect and edit the transaction ledger",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all transactions",
	RunE:  listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a manual transaction",
	RunE:  addFunc,
}

var ignoreCmd = &cobra.Command{
	Use:   "ignore <id>",
	Short: "Toggle a transaction's ignored flag",
	Args:  cobra.ExactArgs(1),
	RunE:  ignoreFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  removeFunc,
}

var categoryCmd = &cobra.Command{
	Use:   "set-category <id> <category>",
	Short: "Assign a category to a transaction directly",
	Args:  cobra.ExactArgs(2),
	RunE:  categoryFunc,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Transaction date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Transaction description")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "Amount (non-negative)")
	addCmd.Flags().StringVar(&addType, "type", string(models.TypeExpense), "Expense or Income")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category (default: classified automatically)")
	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(ignoreCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(categoryCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	s, _, err := root.OpenSession()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tAMOUNT\tCATEGORY\tSOURCE\tTYPE\tIGNORED")
	for _, tx := range s.Transactions() {
		ignored := ""
		if tx.Ignored {
			ignored = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID, tx.Date, tx.Description, tx.Amount, tx.Category, tx.Source, tx.Type, ignored)
	}
	return w.Flush()
}

func addFunc(cmd *cobra.Command, args []string) error {
	s, st, err := root.OpenSession()
	if err != nil {
		return err
	}

	date, err := dateutils.ParseDate(addDate)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(addAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", addAmount, err)
	}

	tx, err := s.AddManual(date, addDescription, amount, models.TransactionType(addType), models.Category(addCategory))
	if err != nil {
		return err
	}
	if err := root.SaveSession(s, st); err != nil {
		return err
	}

	fmt.Printf("Added %s (%s, %s)\n", tx.ID, tx.Category, tx.Amount)
	return nil
}

func ignoreFunc(cmd *cobra.Command, args []string) error {
	s, st, err := root.OpenSession()
	if err != nil {
		return err
	}

	ignored, err := s.ToggleIgnore(args[0])
	if err != nil {
		return err
	}
	if err := root.SaveSession(s, st); err != nil {
		return err
	}

	if ignored {
		fmt.Printf("Transaction %s is now ignored\n", args[0])
	} else {
		fmt.Printf("Transaction %s is visible again\n", args[0])
	}
	return nil
}

func removeFunc(cmd *cobra.Command, args []string) error {
	s, st, err := root.OpenSession()
	if err != nil {
		return err
	}

	if err := s.Remove(args[0]); err != nil {
		return err
	}
	if err := root.SaveSession(s, st); err != nil {
		return err
	}

	fmt.Printf("Removed transaction %s\n", args[0])
	return nil
}

func categoryFunc(cmd *cobra.Command, args []string) error {
	s, st, err := root.OpenSession()
	if err != nil {
		return err
	}

	category, ok := models.ParseCategory(args[1])
	if !ok {
		return fmt.Errorf("unknown category %q (known: %v)", args[1], models.Categories())
	}
	if err := s.SetCategory(args[0], category); err != nil {
		return err
	}
	if err := root.SaveSession(s, st); err != nil {
		return err
	}

	fmt.Printf("Transaction %s is now %s\n", args[0], category)
	return nil
}
