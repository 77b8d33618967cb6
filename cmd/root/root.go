// Package root contains the root command and the shared application
// wiring the subcommands build on.
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbqneto/financial-flow/internal/config"
	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/session"
	"github.com/jbqneto/financial-flow/internal/store"
)

var (
	// Log is the shared logger for commands, configured in
	// PersistentPreRunE.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the resolved application configuration.
	Cfg *config.Config

	// DataDir overrides the configured data directory when set by flag.
	DataDir string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "financial-flow",
		Short: "Import, classify and summarize personal finance transactions.",
		Long: `financial-flow ingests bank and card exports in several formats,
normalizes them into a single ledger, classifies each transaction with
user-defined rules and built-in keywords, and reports on the result.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to financial-flow!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			if DataDir != "" {
				Cfg.Data.Directory = DataDir
			}

			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLogging(Cfg))
			return nil
		},
	}
)

// Init registers the persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&DataDir, "data-dir", "", "Directory holding the transaction and rule files")
}

// OpenSession loads the persisted ledger and rules into a session.
func OpenSession() (*session.Session, *store.Store, error) {
	st := store.New(Cfg.Data.Directory, Log)

	transactions, err := st.LoadTransactions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	ruleList, err := st.LoadRules()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rules: %w", err)
	}

	return session.NewWithData(transactions, ruleList, Log), st, nil
}

// SaveSession persists the session's ledger and rules.
func SaveSession(s *session.Session, st *store.Store) error {
	if err := st.SaveTransactions(s.Transactions()); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	if err := st.SaveRules(s.Rules()); err != nil {
		return fmt.Errorf("failed to save rules: %w", err)
	}
	return nil
}
