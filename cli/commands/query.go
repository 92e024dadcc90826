package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/campbsb/sqlhelper/cli/internal/ui"
)

var queryCmd = &cobra.Command{
	Use:   "query <sql> [bind...]",
	Short: "Run a query and print the result rows",
	Example: `  sqlhelper query "SELECT * FROM users"
  sqlhelper query "SELECT name FROM users WHERE id=?" 42`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHelper()
		if err != nil {
			return reportErr(err)
		}
		defer db.Close()

		rows, err := db.Rows(cmd.Context(), args[0], parseBinds(args[1:])...)
		if err != nil {
			return reportErr(err)
		}
		if len(rows) == 0 {
			ui.Success("0 rows")
			return nil
		}

		headers := make([]string, 0, len(rows[0]))
		for col := range rows[0] {
			headers = append(headers, col)
		}
		sort.Strings(headers)

		table := make([][]string, len(rows))
		for i, row := range rows {
			cells := make([]string, len(headers))
			for j, col := range headers {
				cells[j] = fmt.Sprintf("%v", row[col])
			}
			table[i] = cells
		}
		ui.PrintTable(headers, table)
		ui.Success("%d rows", len(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

// parseBinds converts command-line bind arguments, keeping numeric
// values numeric so engines with strict typing compare correctly.
func parseBinds(args []string) []any {
	binds := make([]any, len(args))
	for i, arg := range args {
		if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
			binds[i] = n
		} else if f, err := strconv.ParseFloat(arg, 64); err == nil {
			binds[i] = f
		} else {
			binds[i] = arg
		}
	}
	return binds
}
