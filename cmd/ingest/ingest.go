// Package ingest handles the file import command.
package ingest

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbqneto/financial-flow/cmd/root"
	"github.com/jbqneto/financial-flow/internal/importer"
)

var format string

// Cmd represents the ingest command.
var Cmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Import transactions from bank, card or sheet exports",
	Long: `Import one or more export files into the ledger. The format is
detected from the filename and content; use --format to force one of
card, bank or sheet.`,
	Args: cobra.MinimumNArgs(1),
	RunE: ingestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Import format: card, bank or sheet (default: auto-detect)")
}

func ingestFunc(cmd *cobra.Command, args []string) error {
	s, st, err := root.OpenSession()
	if err != nil {
		return err
	}

	im := importer.New(root.Cfg.Import.DefaultFormat, root.Log)
	total := 0
	for _, path := range args {
		count, used, err := im.ImportFile(s, path, format)
		if err != nil {
			return fmt.Errorf("import of %s failed: %w", path, err)
		}
		root.Log.WithField("file", path).WithField("format", used).WithField("count", count).Info("Imported file")
		total += count
	}

	if err := root.SaveSession(s, st); err != nil {
		return err
	}

	fmt.Printf("Imported %d transaction(s) from %d file(s)\n", total, len(args))
	return nil
}
