// Plot commands for the agripos CLI.
// Implements: prd005-agripos-cli R4; prd004-entity-tables R6.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agriposplus/agripos/pkg/types"
)

var (
	plotListFarm int64

	plotSaveID       string
	plotSaveFarm     int64
	plotSaveName     string
	plotSaveSize     float64
	plotSaveSizeUnit string
	plotSaveSoil     string
	plotSaveStatus   string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Manage land plots",
}

var plotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plots for a farm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(plotListFarm)
		if err != nil {
			fail(exitUserError, "plot list", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "plot list", err)
		}
		defer s.Close()

		plots, err := s.Plots().List(farmID)
		if err != nil {
			fail(exitSysError, "plot list", err)
		}

		if flagJSON {
			printJSON(plots)
			return nil
		}
		for _, p := range plots {
			fmt.Printf("%s\t%s\t%.2f %s\t%s\n", p.ID, p.Name, p.Size, p.SizeUnit, p.Status)
		}
		return nil
	},
}

var plotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a plot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(plotSaveFarm)
		if err != nil {
			fail(exitUserError, "plot save", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "plot save", err)
		}
		defer s.Close()

		id, err := s.Plots().Save(&types.Plot{
			ID:       plotSaveID,
			FarmID:   farmID,
			Name:     plotSaveName,
			Size:     plotSaveSize,
			SizeUnit: plotSaveSizeUnit,
			SoilType: plotSaveSoil,
			Status:   plotSaveStatus,
		})
		if err != nil {
			fail(exitUserError, "plot save", err)
		}

		fmt.Printf("Saved plot: %s\n", id)
		return nil
	},
}

var plotDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a plot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "plot delete", err)
		}
		defer s.Close()

		if err := s.Plots().Delete(args[0]); err != nil {
			fail(exitUserError, "plot delete", err)
		}

		fmt.Printf("Deleted plot: %s\n", args[0])
		return nil
	},
}

func init() {
	plotListCmd.Flags().Int64Var(&plotListFarm, "farm", 0, "farm id (default: active farm)")

	plotSaveCmd.Flags().StringVar(&plotSaveID, "id", "", "plot id (omit to create)")
	plotSaveCmd.Flags().Int64Var(&plotSaveFarm, "farm", 0, "farm id (default: active farm)")
	plotSaveCmd.Flags().StringVar(&plotSaveName, "name", "", "plot name (required)")
	plotSaveCmd.Flags().Float64Var(&plotSaveSize, "size", 0, "plot size")
	plotSaveCmd.Flags().StringVar(&plotSaveSizeUnit, "size-unit", "", "unit for the plot size, e.g. ha")
	plotSaveCmd.Flags().StringVar(&plotSaveSoil, "soil", "", "soil type")
	plotSaveCmd.Flags().StringVar(&plotSaveStatus, "status", types.PlotAvailable, "status (available, in_use, fallow, unavailable)")
	plotSaveCmd.MarkFlagRequired("name")

	plotCmd.AddCommand(plotListCmd)
	plotCmd.AddCommand(plotSaveCmd)
	plotCmd.AddCommand(plotDeleteCmd)
}
