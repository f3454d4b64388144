// Sale commands for the agripos CLI.
// Implements: prd005-agripos-cli R4, R5; prd004-entity-tables R8.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agriposplus/agripos/pkg/types"
)

var (
	saleListFarm   int64
	saleListStatus string
	saleListFrom   string
	saleListTo     string

	saleRecordFarm     int64
	saleRecordDate     string
	saleRecordCustomer string
	saleRecordMethod   string
	saleRecordStatus   string
	saleRecordDiscount float64
	saleRecordTax      float64
	saleRecordItems    []string
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Record and inspect sales",
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sales for a farm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(saleListFarm)
		if err != nil {
			fail(exitUserError, "sale list", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "sale list", err)
		}
		defer s.Close()

		var sales []types.Sale
		switch {
		case saleListStatus != "":
			sales, err = s.Sales().ListByStatus(farmID, saleListStatus)
		case saleListFrom != "" || saleListTo != "":
			sales, err = s.Sales().ListByDateRange(farmID, saleListFrom, saleListTo)
		default:
			sales, err = s.Sales().List(farmID)
		}
		if err != nil {
			fail(exitSysError, "sale list", err)
		}

		if flagJSON {
			printJSON(sales)
			return nil
		}
		for _, sale := range sales {
			fmt.Printf("%s\t%s\t%s\t%.2f\t%s\n",
				sale.ID, sale.SaleDate, sale.CustomerName, sale.FinalAmount, sale.PaymentStatus)
		}
		return nil
	},
}

var saleGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one sale with its line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "sale get", err)
		}
		defer s.Close()

		sale, err := s.Sales().Get(args[0])
		if err != nil {
			fail(exitUserError, "sale get", err)
		}
		items, err := s.Sales().Items(args[0])
		if err != nil {
			fail(exitSysError, "sale get", err)
		}

		printJSON(struct {
			Sale  *types.Sale      `json:"sale"`
			Items []types.SaleItem `json:"items"`
		}{sale, items})
		return nil
	},
}

var saleRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a sale with its line items and stock effects",
	Long: `Record writes the sale, its line items, one stock movement per
item, and the product quantity decrements in a single transaction.

Items are passed as repeated --item flags of the form
<product-id>:<quantity>:<unit-price>.

Example:
  agripos sale record --date 2026-08-01 --customer "Market Co-op" \
    --item 2f9c...:10:4.00 --item 81aa...:2:12.50`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(saleRecordFarm)
		if err != nil {
			fail(exitUserError, "sale record", err)
		}

		items, total, err := parseSaleItems(saleRecordItems)
		if err != nil {
			fail(exitUserError, "sale record", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "sale record", err)
		}
		defer s.Close()

		final := total - saleRecordDiscount + saleRecordTax
		sale := &types.Sale{
			FarmID:         farmID,
			SaleDate:       saleRecordDate,
			CustomerName:   saleRecordCustomer,
			TotalAmount:    total,
			DiscountAmount: saleRecordDiscount,
			TaxAmount:      saleRecordTax,
			FinalAmount:    final,
			PaymentMethod:  saleRecordMethod,
		}
		if saleRecordStatus != "" {
			if err := sale.SetPaymentStatus(saleRecordStatus); err != nil {
				fail(exitUserError, "sale record", err)
			}
		}

		id, err := s.Sales().RecordSale(sale, items)
		if err != nil {
			fail(exitUserError, "sale record", err)
		}

		fmt.Printf("Recorded sale: %s (%.2f)\n", id, final)
		return nil
	},
}

var saleDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sale and its line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "sale delete", err)
		}
		defer s.Close()

		if err := s.Sales().Delete(args[0]); err != nil {
			fail(exitUserError, "sale delete", err)
		}

		fmt.Printf("Deleted sale: %s\n", args[0])
		return nil
	},
}

// parseSaleItems parses repeated --item values of the form
// <product-id>:<quantity>:<unit-price> and returns the items plus their
// summed total.
func parseSaleItems(specs []string) ([]types.SaleItem, float64, error) {
	if len(specs) == 0 {
		return nil, 0, fmt.Errorf("%w: at least one --item is required", types.ErrInvalidData)
	}

	var items []types.SaleItem
	var total float64
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 || parts[0] == "" {
			return nil, 0, fmt.Errorf("invalid item %q (expected product-id:quantity:unit-price)", spec)
		}
		qty, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid quantity in item %q", spec)
		}
		price, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid unit price in item %q", spec)
		}

		line := qty * price
		total += line
		items = append(items, types.SaleItem{
			ProductID:  parts[0],
			Quantity:   qty,
			UnitPrice:  price,
			TotalPrice: line,
		})
	}
	return items, total, nil
}

func init() {
	saleListCmd.Flags().Int64Var(&saleListFarm, "farm", 0, "farm id (default: active farm)")
	saleListCmd.Flags().StringVar(&saleListStatus, "status", "", "filter by payment status (paid, partial, pending, cancelled)")
	saleListCmd.Flags().StringVar(&saleListFrom, "from", "", "start date, YYYY-MM-DD inclusive")
	saleListCmd.Flags().StringVar(&saleListTo, "to", "", "end date, YYYY-MM-DD inclusive")

	saleRecordCmd.Flags().Int64Var(&saleRecordFarm, "farm", 0, "farm id (default: active farm)")
	saleRecordCmd.Flags().StringVar(&saleRecordDate, "date", "", "sale date, YYYY-MM-DD (required)")
	saleRecordCmd.Flags().StringVar(&saleRecordCustomer, "customer", "", "customer name")
	saleRecordCmd.Flags().StringVar(&saleRecordMethod, "method", "", "payment method")
	saleRecordCmd.Flags().StringVar(&saleRecordStatus, "status", types.PaymentPaid, "payment status")
	saleRecordCmd.Flags().Float64Var(&saleRecordDiscount, "discount", 0, "discount amount")
	saleRecordCmd.Flags().Float64Var(&saleRecordTax, "tax", 0, "tax amount")
	saleRecordCmd.Flags().StringArrayVar(&saleRecordItems, "item", nil, "line item as product-id:quantity:unit-price (repeatable)")
	saleRecordCmd.MarkFlagRequired("date")
	saleRecordCmd.MarkFlagRequired("item")

	saleCmd.AddCommand(saleListCmd)
	saleCmd.AddCommand(saleGetCmd)
	saleCmd.AddCommand(saleRecordCmd)
	saleCmd.AddCommand(saleDeleteCmd)
}
