// Product commands for the agripos CLI.
// Implements: prd005-agripos-cli R4; prd004-entity-tables R3.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agriposplus/agripos/pkg/types"
)

var (
	productListFarm int64
	productListType string
	productListLow  bool

	productSaveID       string
	productSaveFarm     int64
	productSaveName     string
	productSaveCategory string
	productSaveType     string
	productSaveSKU      string
	productSaveUnit     string
	productSavePrice    float64
	productSaveCost     float64
	productSaveQty      float64
	productSaveMinQty   float64
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products and stock levels",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products for a farm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(productListFarm)
		if err != nil {
			fail(exitUserError, "product list", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "product list", err)
		}
		defer s.Close()

		var products []types.Product
		switch {
		case productListLow:
			products, err = s.Products().LowStock(farmID)
		case productListType != "":
			products, err = s.Products().ListByType(farmID, productListType)
		default:
			products, err = s.Products().List(farmID)
		}
		if err != nil {
			fail(exitSysError, "product list", err)
		}

		if flagJSON {
			printJSON(products)
			return nil
		}
		for _, p := range products {
			marker := ""
			if p.LowStock() {
				marker = "\tLOW"
			}
			fmt.Printf("%s\t%s\t%s\t%.2f\t%.2f%s\n", p.ID, p.Name, p.Type, p.Price, p.Quantity, marker)
		}
		return nil
	},
}

var productSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a product",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(productSaveFarm)
		if err != nil {
			fail(exitUserError, "product save", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "product save", err)
		}
		defer s.Close()

		p := &types.Product{
			ID:          productSaveID,
			FarmID:      farmID,
			Name:        productSaveName,
			Category:    productSaveCategory,
			Type:        productSaveType,
			SKU:         productSaveSKU,
			Unit:        productSaveUnit,
			Price:       productSavePrice,
			Cost:        productSaveCost,
			Quantity:    productSaveQty,
			MinQuantity: productSaveMinQty,
		}

		id, err := s.Products().Save(p)
		if err != nil {
			fail(exitUserError, "product save", err)
		}

		if flagJSON {
			saved, err := s.Products().Get(id)
			if err != nil {
				fail(exitSysError, "product save", err)
			}
			printJSON(saved)
			return nil
		}
		fmt.Printf("Saved product: %s\n", id)
		return nil
	},
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "product delete", err)
		}
		defer s.Close()

		if err := s.Products().Delete(args[0]); err != nil {
			fail(exitUserError, "product delete", err)
		}

		fmt.Printf("Deleted product: %s\n", args[0])
		return nil
	},
}

func init() {
	productListCmd.Flags().Int64Var(&productListFarm, "farm", 0, "farm id (default: active farm)")
	productListCmd.Flags().StringVar(&productListType, "type", "", "filter by product type (input, output, asset, service)")
	productListCmd.Flags().BoolVar(&productListLow, "low", false, "only products at or below their reorder level")

	productSaveCmd.Flags().StringVar(&productSaveID, "id", "", "product id (omit to create)")
	productSaveCmd.Flags().Int64Var(&productSaveFarm, "farm", 0, "farm id (default: active farm)")
	productSaveCmd.Flags().StringVar(&productSaveName, "name", "", "product name")
	productSaveCmd.Flags().StringVar(&productSaveCategory, "category", "", "product category")
	productSaveCmd.Flags().StringVar(&productSaveType, "type", types.ProductTypeOutput, "product type (input, output, asset, service)")
	productSaveCmd.Flags().StringVar(&productSaveSKU, "sku", "", "stock keeping unit")
	productSaveCmd.Flags().StringVar(&productSaveUnit, "unit", "", "unit of measure")
	productSaveCmd.Flags().Float64Var(&productSavePrice, "price", 0, "sale price")
	productSaveCmd.Flags().Float64Var(&productSaveCost, "cost", 0, "unit cost")
	productSaveCmd.Flags().Float64Var(&productSaveQty, "quantity", 0, "quantity on hand")
	productSaveCmd.Flags().Float64Var(&productSaveMinQty, "min-quantity", 0, "reorder level")
	productSaveCmd.MarkFlagRequired("name")

	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productSaveCmd)
	productCmd.AddCommand(productDeleteCmd)
}
