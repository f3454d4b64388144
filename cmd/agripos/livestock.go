// Livestock commands for the agripos CLI.
// Implements: prd005-agripos-cli R4; prd004-entity-tables R4.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agriposplus/agripos/pkg/types"
)

var (
	livestockListFarm   int64
	livestockListStatus string

	livestockSaveID      string
	livestockSaveFarm    int64
	livestockSaveName    string
	livestockSaveSpecies string
	livestockSaveBreed   string
	livestockSaveTag     string
	livestockSaveStatus  string

	livestockEventType  string
	livestockEventDate  string
	livestockEventDesc  string
	livestockEventValue float64
)

var livestockCmd = &cobra.Command{
	Use:   "livestock",
	Short: "Manage livestock and their event timelines",
}

var livestockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List livestock for a farm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(livestockListFarm)
		if err != nil {
			fail(exitUserError, "livestock list", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "livestock list", err)
		}
		defer s.Close()

		var animals []types.Livestock
		if livestockListStatus != "" {
			animals, err = s.Livestock().ListByStatus(farmID, livestockListStatus)
		} else {
			animals, err = s.Livestock().List(farmID)
		}
		if err != nil {
			fail(exitSysError, "livestock list", err)
		}

		if flagJSON {
			printJSON(animals)
			return nil
		}
		for _, a := range animals {
			fmt.Printf("%s\t%s\t%s\t%s\n", a.ID, a.Species, a.Name, a.Status)
		}
		return nil
	},
}

var livestockSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update an animal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		farmID, err := resolveFarmID(livestockSaveFarm)
		if err != nil {
			fail(exitUserError, "livestock save", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "livestock save", err)
		}
		defer s.Close()

		animal := &types.Livestock{
			ID:      livestockSaveID,
			FarmID:  farmID,
			Name:    livestockSaveName,
			Species: livestockSaveSpecies,
			Breed:   livestockSaveBreed,
			TagID:   livestockSaveTag,
		}
		if livestockSaveStatus != "" {
			if err := animal.SetStatus(livestockSaveStatus); err != nil {
				fail(exitUserError, "livestock save", err)
			}
		}

		id, err := s.Livestock().Save(animal)
		if err != nil {
			fail(exitUserError, "livestock save", err)
		}

		fmt.Printf("Saved livestock: %s\n", id)
		return nil
	},
}

var livestockDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an animal and its events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "livestock delete", err)
		}
		defer s.Close()

		if err := s.Livestock().Delete(args[0]); err != nil {
			fail(exitUserError, "livestock delete", err)
		}

		fmt.Printf("Deleted livestock: %s\n", args[0])
		return nil
	},
}

var livestockEventCmd = &cobra.Command{
	Use:   "event <livestock-id>",
	Short: "Record a timeline event for an animal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "livestock event", err)
		}
		defer s.Close()

		id, err := s.Livestock().AddEvent(&types.LivestockEvent{
			LivestockID: args[0],
			EventType:   livestockEventType,
			EventDate:   livestockEventDate,
			Description: livestockEventDesc,
			Value:       livestockEventValue,
		})
		if err != nil {
			fail(exitUserError, "livestock event", err)
		}

		fmt.Printf("Recorded event: %s\n", id)
		return nil
	},
}

var livestockEventsCmd = &cobra.Command{
	Use:   "events <livestock-id>",
	Short: "Show an animal's event timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "livestock events", err)
		}
		defer s.Close()

		events, err := s.Livestock().Events(args[0])
		if err != nil {
			fail(exitSysError, "livestock events", err)
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
	livestockListCmd.Flags().Int64Var(&livestockListFarm, "farm", 0, "farm id (default: active farm)")
	livestockListCmd.Flags().StringVar(&livestockListStatus, "status", "", "filter by status (active, sold, deceased, transferred)")

	livestockSaveCmd.Flags().StringVar(&livestockSaveID, "id", "", "livestock id (omit to create)")
	livestockSaveCmd.Flags().Int64Var(&livestockSaveFarm, "farm", 0, "farm id (default: active farm)")
	livestockSaveCmd.Flags().StringVar(&livestockSaveName, "name", "", "animal name")
	livestockSaveCmd.Flags().StringVar(&livestockSaveSpecies, "species", "", "species (required)")
	livestockSaveCmd.Flags().StringVar(&livestockSaveBreed, "breed", "", "breed")
	livestockSaveCmd.Flags().StringVar(&livestockSaveTag, "tag", "", "ear tag or identifier")
	livestockSaveCmd.Flags().StringVar(&livestockSaveStatus, "status", "", "status (default: active)")
	livestockSaveCmd.MarkFlagRequired("species")

	livestockEventCmd.Flags().StringVar(&livestockEventType, "type", "", "event type (required)")
	livestockEventCmd.Flags().StringVar(&livestockEventDate, "date", "", "event date, YYYY-MM-DD (required)")
	livestockEventCmd.Flags().StringVar(&livestockEventDesc, "description", "", "event description")
	livestockEventCmd.Flags().Float64Var(&livestockEventValue, "value", 0, "numeric value, e.g. weight")
	livestockEventCmd.MarkFlagRequired("type")
	livestockEventCmd.MarkFlagRequired("date")

	livestockCmd.AddCommand(livestockListCmd)
	livestockCmd.AddCommand(livestockSaveCmd)
	livestockCmd.AddCommand(livestockDeleteCmd)
	livestockCmd.AddCommand(livestockEventCmd)
	livestockCmd.AddCommand(livestockEventsCmd)
}
