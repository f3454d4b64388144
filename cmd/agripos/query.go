// Query command runs a raw SQL statement through the gateway.
// Implements: prd003-query-gateway R1; prd005-agripos-cli R7.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <statement> [param...]",
	Short: "Run a raw SQL statement against the store",
	Long: `Query executes one SQL statement with optional positional
parameters. Statements beginning with SELECT return rows; anything else
returns the affected row count and last insert id.

Example:
  agripos query "SELECT id, name FROM farm_profiles"
  agripos query "UPDATE products SET price = ? WHERE id = ?" 4.50 2f9c...`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "query", err)
		}
		defer s.Close()

		var params []any
		for _, arg := range args[1:] {
			params = append(params, arg)
		}

		res := s.Execute(args[0], params)
		if res.Failed() {
			fmt.Fprintln(os.Stderr, "query:", res.Err.Message)
			os.Exit(exitUserError)
		}

		if res.Rows != nil {
			printJSON(res.Rows)
			return nil
		}
		fmt.Printf("rows affected: %d, last insert id: %d\n", res.RowsAffected, res.LastInsertID)
		return nil
	},
}
