// Package commands implements the sqlhelper CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campbsb/sqlhelper"
	"github.com/campbsb/sqlhelper/cli/internal/config"
	"github.com/campbsb/sqlhelper/cli/internal/ui"
	"github.com/campbsb/sqlhelper/driver/mysql"
	"github.com/campbsb/sqlhelper/driver/postgres"
	"github.com/campbsb/sqlhelper/driver/sqlite"
	"github.com/campbsb/sqlhelper/internal/debug"
)

var (
	flagProvider string
	flagURL      string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "sqlhelper",
	Short: "Run ad-hoc SQL against any supported engine",
	Long: `sqlhelper runs ad-hoc SQL statements against MySQL, PostgreSQL or
SQLite through one uniform interface.

Statements use "?" placeholders regardless of engine; bind values are
supplied as extra arguments. Connection settings come from flags or from
SQLHELPER_PROVIDER / SQLHELPER_URL (DATABASE_URL is honored as a
fallback), optionally via a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cfg := config.Load()
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", cfg.Provider,
		"database engine: mysql, postgres or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", cfg.URL,
		"engine-native connection string (file path or :memory: for sqlite)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", cfg.Debug,
		"log executed statements to stderr")
}

// openHelper builds a Helper for the selected provider.
func openHelper() (*sqlhelper.Helper, error) {
	debug.Init(flagDebug)

	switch flagProvider {
	case "mysql":
		return sqlhelper.New(mysql.New(flagURL)), nil
	case "postgres", "postgresql":
		return sqlhelper.New(postgres.New(flagURL)), nil
	case "sqlite", "sqlite3":
		return sqlhelper.New(sqlite.New(flagURL)), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", flagProvider)
	}
}

func reportErr(err error) error {
	ui.Error("%v", err)
	return err
}
