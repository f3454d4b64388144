// Inventory commands for the agripos CLI.
// Implements: prd005-agripos-cli R4; prd004-entity-tables R7.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agriposplus/agripos/pkg/types"
)

var (
	inventoryListFarm    int64
	inventoryListProduct string
	inventoryListFrom    string
	inventoryListTo      string

	inventoryRecordFarm    int64
	inventoryRecordProduct string
	inventoryRecordType    string
	inventoryRecordQty     float64
	inventoryRecordPrice   float64
	inventoryRecordDate    string
	inventoryRecordNotes   string
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Record and inspect stock movements",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stock movements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "inventory list", err)
		}
		defer s.Close()

		var txns []types.InventoryTransaction
		switch {
		case inventoryListProduct != "":
			txns, err = s.Inventory().ListByProduct(inventoryListProduct)
		case inventoryListFrom != "" || inventoryListTo != "":
			farmID, ferr := resolveFarmID(inventoryListFarm)
			if ferr != nil {
				fail(exitUserError, "inventory list", ferr)
			}
			txns, err = s.Inventory().ListByDateRange(farmID, inventoryListFrom, inventoryListTo)
		default:
			farmID, ferr := resolveFarmID(inventoryListFarm)
			if ferr != nil {
				fail(exitUserError, "inventory list", ferr)
			}
			txns, err = s.Inventory().List(farmID)
		}
		if err != nil {
			fail(exitSysError, "inventory list", err)
		}

		if flagJSON {
			printJSON(txns)
			return nil
		}
		for _, txn := range txns {
			fmt.Printf("%s\t%s\t%s\t%.2f\t%.2f\n",
				txn.Date, txn.TransactionType, txn.ProductID, txn.Quantity, txn.TotalPrice)
		}
		return nil
	},
}

var inventoryRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a stock movement",
	Long: `Record appends one stock movement for a product. Movements are
append-only history; they are never updated or deleted.

Example:
  agripos inventory record --product <id> --type purchase --quantity 20 --price 1.50 --date 2026-08-01`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(inventoryRecordFarm)
		if err != nil {
			fail(exitUserError, "inventory record", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "inventory record", err)
		}
		defer s.Close()

		id, err := s.Inventory().Record(&types.InventoryTransaction{
			FarmID:          farmID,
			ProductID:       inventoryRecordProduct,
			TransactionType: inventoryRecordType,
			Quantity:        inventoryRecordQty,
			UnitPrice:       inventoryRecordPrice,
			TotalPrice:      inventoryRecordQty * inventoryRecordPrice,
			Date:            inventoryRecordDate,
			Notes:           inventoryRecordNotes,
		})
		if err != nil {
			fail(exitUserError, "inventory record", err)
		}

		fmt.Printf("Recorded movement: %s\n", id)
		return nil
	},
}

func init() {
	inventoryListCmd.Flags().Int64Var(&inventoryListFarm, "farm", 0, "farm id (default: active farm)")
	inventoryListCmd.Flags().StringVar(&inventoryListProduct, "product", "", "filter by product id")
	inventoryListCmd.Flags().StringVar(&inventoryListFrom, "from", "", "start date, YYYY-MM-DD inclusive")
	inventoryListCmd.Flags().StringVar(&inventoryListTo, "to", "", "end date, YYYY-MM-DD inclusive")

	inventoryRecordCmd.Flags().Int64Var(&inventoryRecordFarm, "farm", 0, "farm id (default: active farm)")
	inventoryRecordCmd.Flags().StringVar(&inventoryRecordProduct, "product", "", "product id (required)")
	inventoryRecordCmd.Flags().StringVar(&inventoryRecordType, "type", "", "movement type (purchase, sale, adjustment, transfer, production, loss)")
	inventoryRecordCmd.Flags().Float64Var(&inventoryRecordQty, "quantity", 0, "quantity moved")
	inventoryRecordCmd.Flags().Float64Var(&inventoryRecordPrice, "price", 0, "unit price")
	inventoryRecordCmd.Flags().StringVar(&inventoryRecordDate, "date", "", "movement date, YYYY-MM-DD (required)")
	inventoryRecordCmd.Flags().StringVar(&inventoryRecordNotes, "notes", "", "free-form notes")
	inventoryRecordCmd.MarkFlagRequired("product")
	inventoryRecordCmd.MarkFlagRequired("type")
	inventoryRecordCmd.MarkFlagRequired("date")

	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventoryRecordCmd)
}
