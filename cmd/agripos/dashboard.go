// Dashboard command for the agripos CLI.
// Implements: prd005-agripos-cli R4.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardFarm int64

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show summary statistics for a farm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(dashboardFarm)
		if err != nil {
			fail(exitUserError, "dashboard", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "dashboard", err)
		}
		defer s.Close()

		stats, err := s.DashboardStats(farmID)
		if err != nil {
			fail(exitSysError, "dashboard", err)
		}

		if flagJSON {
			printJSON(stats)
			return nil
		}
		fmt.Printf("Active livestock:  %d\n", stats.LivestockCount)
		fmt.Printf("Growing crops:     %d\n", stats.CropCount)
		fmt.Printf("Low inventory:     %d\n", stats.LowInventoryCount)
		fmt.Printf("Sales today:       %d (%.2f)\n", stats.SalesToday, stats.RevenueToday)
		fmt.Printf("Revenue (month):   %.2f\n", stats.RevenueMonth)
		fmt.Printf("Expenses (month):  %.2f\n", stats.ExpensesMonth)
		fmt.Printf("Profit (month):    %.2f\n", stats.ProfitMonth)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().Int64Var(&dashboardFarm, "farm", 0, "farm id (default: active farm)")
}
