// Package rules handles the auto-rule management commands. Every
// change to the rule list reclassifies the whole ledger before it is
// saved.
package rules

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jbqneto/financial-flow/cmd/root"
	"github.com/jbqneto/financial-flow/internal/models"
)

var (
	addPattern  string
	addMode     string
	addCategory string
	addIgnore   bool

	fromCategory string
	fromIgnore   bool
)

// Cmd represents the rules command group.
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage the automatic classification rules",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules in evaluation order",
	RunE:  listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a rule and reclassify the ledger",
	RunE:  addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a rule and reclassify the ledger",
	Args:  cobra.ExactArgs(1),
	RunE:  removeFunc,
}

var fromCmd = &cobra.Command{
	Use:   "from-transaction <transaction-id>",
	Short: "Create an exact-match rule from a transaction's description",
	Args:  cobra.ExactArgs(1),
	RunE:  fromFunc,
}

func init() {
	addCmd.Flags().StringVar(&addPattern, "pattern", "", "Pattern to match against descriptions")
	addCmd.Flags().StringVar(&addMode, "mode", string(models.MatchExact), "Match mode: exact or prefix")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category to assign on match")
	addCmd.Flags().BoolVar(&addIgnore, "ignore", false, "Mark matching transactions as ignored")
	_ = addCmd.MarkFlagRequired("pattern")

	fromCmd.Flags().StringVar(&fromCategory, "category", "", "Category to assign on match")
	fromCmd.Flags().BoolVar(&fromIgnore, "ignore", false, "Mark matching transactions as ignored")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(fromCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	s, _, err := root.OpenSession()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tMODE\tCATEGORY\tIGNORE")
	for _, rule := range s.Rules() {
		category := "-"
		if rule.TargetCategory != nil {
			category = string(*rule.TargetCategory)
		}
		ignore := "-"
		if rule.ForceIgnore != nil {
			ignore = fmt.Sprintf("%t", *rule.ForceIgnore)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", rule.ID, rule.Pattern, rule.MatchMode, category, ignore)
	}
	return w.Flush()
}

func addFunc(cmd *cobra.Command, args []string) error {
	s, st, err := root.OpenSession()
	if err != nil {
		return err
	}

	rule := models.AutoRule{
		Pattern:   addPattern,
		MatchMode: models.MatchMode(addMode),
	}
	if addCategory != "" {
		category, ok := models.ParseCategory(addCategory)
		if !ok {
			return fmt.Errorf("unknown category %q (known: %v)", addCategory, models.Categories())
		}
		rule.TargetCategory = &category
	}
	if cmd.Flags().Changed("ignore") {
		rule.ForceIgnore = &addIgnore
	}

	added, err := s.AddRule(rule)
	if err != nil {
		return err
	}
	if err := root.SaveSession(s, st); err != nil {
		return err
	}

	fmt.Printf("Added rule %s\n", added.ID)
	return nil
}

func removeFunc(cmd *cobra.Command, args []string) error {
	s, st, err := root.OpenSession()
	if err != nil {
		return err
	}

	if err := s.RemoveRule(args[0]); err != nil {
		return err
	}
	if err := root.SaveSession(s, st); err != nil {
		return err
	}

	fmt.Printf("Removed rule %s\n", args[0])
	return nil
}

func fromFunc(cmd *cobra.Command, args []string) error {
	s, st, err := root.OpenSession()
	if err != nil {
		return err
	}

	var target *models.Category
	if fromCategory != "" {
		category, ok := models.ParseCategory(fromCategory)
		if !ok {
			return fmt.Errorf("unknown category %q (known: %v)", fromCategory, models.Categories())
		}
		target = &category
	}
	var ignore *bool
	if cmd.Flags().Changed("ignore") {
		ignore = &fromIgnore
	}

	rule, err := s.RuleFromTransaction(args[0], target, ignore)
	if err != nil {
		return err
	}
	if err := root.SaveSession(s, st); err != nil {
		return err
	}

	fmt.Printf("Added rule %s matching %q\n", rule.ID, rule.Pattern)
	return nil
}
