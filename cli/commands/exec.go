package commands

import (
	"github.com/spf13/cobra"

	"github.com/campbsb/sqlhelper/cli/internal/ui"
)

var execCmd = &cobra.Command{
	Use:   "exec <sql> [bind...]",
	Short: "Run a statement and print the affected row count",
	Example: `  sqlhelper exec "CREATE TABLE t (id INTEGER, name TEXT)"
  sqlhelper exec "DELETE FROM t WHERE id=?" 42`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHelper()
		if err != nil {
			return reportErr(err)
		}
		defer db.Close()

		affected, err := db.Exec(cmd.Context(), args[0], parseBinds(args[1:])...)
		if err != nil {
			return reportErr(err)
		}
		ui.Success("%d rows affected", affected)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
