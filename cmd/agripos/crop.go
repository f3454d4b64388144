// Crop commands for the agripos CLI.
// Implements: prd005-agripos-cli R4; prd004-entity-tables R5.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agriposplus/agripos/pkg/types"
)

var (
	cropListFarm   int64
	cropListStatus string
	cropListPlot   string

	cropSaveID       string
	cropSaveFarm     int64
	cropSaveName     string
	cropSaveType     string
	cropSaveVariety  string
	cropSavePlot     string
	cropSaveStatus   string
	cropSavePlanting string

	cropEventType    string
	cropEventDate    string
	cropEventDesc    string
	cropEventProduct string
	cropEventQty     float64
	cropEventUnit    string
)

var cropCmd = &cobra.Command{
	Use:   "crop",
	Short: "Manage crops and their event timelines",
}

var cropListCmd = &cobra.Command{
	Use:   "list",
	Short: "List crops for a farm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "crop list", err)
		}
		defer s.Close()

		var crops []types.Crop
		if cropListPlot != "" {
			crops, err = s.Crops().ListByPlot(cropListPlot)
		} else {
			farmID, ferr := resolveFarmID(cropListFarm)
			if ferr != nil {
				fail(exitUserError, "crop list", ferr)
			}
			if cropListStatus != "" {
				crops, err = s.Crops().ListByStatus(farmID, cropListStatus)
			} else {
				crops, err = s.Crops().List(farmID)
			}
		}
		if err != nil {
			fail(exitSysError, "crop list", err)
		}

		if flagJSON {
			printJSON(crops)
			return nil
		}
		for _, c := range crops {
			fmt.Printf("%s\t%s\t%s\t%s\n", c.ID, c.Name, c.CropType, c.Status)
		}
		return nil
	},
}

var cropSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a crop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(cropSaveFarm)
		if err != nil {
			fail(exitUserError, "crop save", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "crop save", err)
		}
		defer s.Close()

		crop := &types.Crop{
			ID:           cropSaveID,
			FarmID:       farmID,
			Name:         cropSaveName,
			CropType:     cropSaveType,
			Variety:      cropSaveVariety,
			PlotID:       cropSavePlot,
			PlantingDate: cropSavePlanting,
		}
		if cropSaveStatus != "" {
			if err := crop.SetStatus(cropSaveStatus); err != nil {
				fail(exitUserError, "crop save", err)
			}
		}

		id, err := s.Crops().Save(crop)
		if err != nil {
			fail(exitUserError, "crop save", err)
		}

		fmt.Printf("Saved crop: %s\n", id)
		return nil
	},
}

var cropDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a crop and its events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "crop delete", err)
		}
		defer s.Close()

		if err := s.Crops().Delete(args[0]); err != nil {
			fail(exitUserError, "crop delete", err)
		}

		fmt.Printf("Deleted crop: %s\n", args[0])
		return nil
	},
}

var cropEventCmd = &cobra.Command{
	Use:   "event <crop-id>",
	Short: "Record a timeline event for a crop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "crop event", err)
		}
		defer s.Close()

		id, err := s.Crops().AddEvent(&types.CropEvent{
			CropID:      args[0],
			EventType:   cropEventType,
			EventDate:   cropEventDate,
			Description: cropEventDesc,
			ProductUsed: cropEventProduct,
			Quantity:    cropEventQty,
			Unit:        cropEventUnit,
		})
		if err != nil {
			fail(exitUserError, "crop event", err)
		}

		fmt.Printf("Recorded event: %s\n", id)
		return nil
	},
}

var cropEventsCmd = &cobra.Command{
	Use:   "events <crop-id>",
	Short: "Show a crop's event timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "crop events", err)
		}
		defer s.Close()

		events, err := s.Crops().Events(args[0])
		if err != nil {
			fail(exitSysError, "crop events", err)
		}

		if flagJSON {
			printJSON(events)
			return nil
		}
		for _, ev := range events {
			fmt.Printf("%s\t%s\t%s\n", ev.EventDate, ev.EventType, ev.Description)
		}
		return nil
	},
}

func init() {
	cropListCmd.Flags().Int64Var(&cropListFarm, "farm", 0, "farm id (default: active farm)")
	cropListCmd.Flags().StringVar(&cropListStatus, "status", "", "filter by status (planned, planted, growing, harvested, failed)")
	cropListCmd.Flags().StringVar(&cropListPlot, "plot", "", "filter by plot id")

	cropSaveCmd.Flags().StringVar(&cropSaveID, "id", "", "crop id (omit to create)")
	cropSaveCmd.Flags().Int64Var(&cropSaveFarm, "farm", 0, "farm id (default: active farm)")
	cropSaveCmd.Flags().StringVar(&cropSaveName, "name", "", "crop name (required)")
	cropSaveCmd.Flags().StringVar(&cropSaveType, "type", "", "crop type, e.g. grain, vegetable")
	cropSaveCmd.Flags().StringVar(&cropSaveVariety, "variety", "", "variety")
	cropSaveCmd.Flags().StringVar(&cropSavePlot, "plot", "", "plot id the crop is sited on")
	cropSaveCmd.Flags().StringVar(&cropSaveStatus, "status", "", "status (default: planned)")
	cropSaveCmd.Flags().StringVar(&cropSavePlanting, "planting-date", "", "planting date, YYYY-MM-DD")
	cropSaveCmd.MarkFlagRequired("name")

	cropEventCmd.Flags().StringVar(&cropEventType, "type", "", "event type (required)")
	cropEventCmd.Flags().StringVar(&cropEventDate, "date", "", "event date, YYYY-MM-DD (required)")
	cropEventCmd.Flags().StringVar(&cropEventDesc, "description", "", "event description")
	cropEventCmd.Flags().StringVar(&cropEventProduct, "product-used", "", "product applied, if any")
	cropEventCmd.Flags().Float64Var(&cropEventQty, "quantity", 0, "quantity applied")
	cropEventCmd.Flags().StringVar(&cropEventUnit, "unit", "", "unit for the applied quantity")
	cropEventCmd.MarkFlagRequired("type")
	cropEventCmd.MarkFlagRequired("date")

	cropCmd.AddCommand(cropListCmd)
	cropCmd.AddCommand(cropSaveCmd)
	cropCmd.AddCommand(cropDeleteCmd)
	cropCmd.AddCommand(cropEventCmd)
	cropCmd.AddCommand(cropEventsCmd)
}
