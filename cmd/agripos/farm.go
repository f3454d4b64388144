// Farm commands for the agripos CLI.
// Implements: prd005-agripos-cli R4; prd004-entity-tables R2.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agriposplus/agripos/pkg/types"
)

var (
	farmSaveID      int64
	farmSaveName    string
	farmSaveAddress string
	farmSaveOwner   string
	farmSavePhone   string
	farmSaveEmail   string
	farmSaveModules string
)

var farmCmd = &cobra.Command{
	Use:   "farm",
	Short: "Manage farm profiles",
}

var farmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all farms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "farm list", err)
		}
		defer s.Close()

		farms, err := s.Farms().List()
		if err != nil {
			fail(exitSysError, "farm list", err)
		}

		if flagJSON {
			printJSON(farms)
			return nil
		}
		for _, f := range farms {
			fmt.Printf("%d\t%s\t%s\n", f.ID, f.Name, strings.Join(f.Modules, ","))
		}
		return nil
	},
}

var farmGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one farm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseFarmID(args[0])
		if err != nil {
			fail(exitUserError, "farm get", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "farm get", err)
		}
		defer s.Close()

		farm, err := s.Farms().Get(id)
		if err != nil {
			fail(exitUserError, "farm get", err)
		}

		printJSON(farm)
		return nil
	},
}

var farmSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a farm",
	Long: `Save creates a farm when --id is omitted and updates it otherwise.

Modules are a comma-separated subset of:
  livestock, crops, aquaculture, apiculture, insects

Example:
  agripos farm save --name "North Field" --modules crops
  agripos farm save --id 2 --name "North Field" --owner "Dana Reyes"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		modules, err := parseModules(farmSaveModules)
		if err != nil {
			fail(exitUserError, "farm save", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "farm save", err)
		}
		defer s.Close()

		farm := &types.Farm{
			ID:      farmSaveID,
			Name:    farmSaveName,
			Address: farmSaveAddress,
			Owner:   farmSaveOwner,
			Phone:   farmSavePhone,
			Email:   farmSaveEmail,
			Modules: modules,
		}

		// On update, preserve fields the caller did not pass.
		if farmSaveID != 0 {
			existing, err := s.Farms().Get(farmSaveID)
			if err != nil {
				fail(exitUserError, "farm save", err)
			}
			mergeFarm(farm, existing)
		}

		id, err := s.Farms().Save(farm)
		if err != nil {
			fail(exitUserError, "farm save", err)
		}

		if flagJSON {
			saved, err := s.Farms().Get(id)
			if err != nil {
				fail(exitSysError, "farm save", err)
			}
			printJSON(saved)
			return nil
		}
		fmt.Printf("Saved farm: %d\n", id)
		return nil
	},
}

var farmDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a farm and all of its records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseFarmID(args[0])
		if err != nil {
			fail(exitUserError, "farm delete", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "farm delete", err)
		}
		defer s.Close()

		if err := s.Farms().Delete(id); err != nil {
			fail(exitUserError, "farm delete", err)
		}

		fmt.Printf("Deleted farm: %d\n", id)
		return nil
	},
}

var farmUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Select the active farm for subsequent commands",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseFarmID(args[0])
		if err != nil {
			fail(exitUserError, "farm use", err)
		}

		s, err := openStore()
		if err != nil {
			fail(exitSysError, "farm use", err)
		}
		defer s.Close()

		// Fail before persisting anything if the farm does not exist.
		farm, err := s.Farms().Get(id)
		if err != nil {
			fail(exitUserError, "farm use", err)
		}

		st, err := loadState()
		if err != nil {
			fail(exitSysError, "farm use", err)
		}
		st.ActiveFarmID = id
		if err := saveState(st); err != nil {
			fail(exitSysError, "farm use", err)
		}

		fmt.Printf("Active farm: %d (%s)\n", farm.ID, farm.Name)
		return nil
	},
}

// parseModules converts a comma-separated module list into a ModuleSet.
func parseModules(csv string) (types.ModuleSet, error) {
	if csv == "" {
		return nil, nil
	}
	var mods []string
	for _, m := range strings.Split(csv, ",") {
		mods = append(mods, strings.TrimSpace(m))
	}
	return types.NewModuleSet(mods...)
}

// mergeFarm fills zero-valued fields of farm from the stored row so a
// partial update does not blank out the rest.
func mergeFarm(farm, existing *types.Farm) {
	if farm.Name == "" {
		farm.Name = existing.Name
	}
	if farm.Address == "" {
		farm.Address = existing.Address
	}
	if farm.Owner == "" {
		farm.Owner = existing.Owner
	}
	if farm.Phone == "" {
		farm.Phone = existing.Phone
	}
	if farm.Email == "" {
		farm.Email = existing.Email
	}
	if farm.Modules == nil {
		farm.Modules = existing.Modules
	}
	farm.TaxID = existing.TaxID
	farm.Notes = existing.Notes
}

func init() {
	farmSaveCmd.Flags().Int64Var(&farmSaveID, "id", 0, "farm id (omit to create)")
	farmSaveCmd.Flags().StringVar(&farmSaveName, "name", "", "farm name")
	farmSaveCmd.Flags().StringVar(&farmSaveAddress, "address", "", "farm address")
	farmSaveCmd.Flags().StringVar(&farmSaveOwner, "owner", "", "owner name")
	farmSaveCmd.Flags().StringVar(&farmSavePhone, "phone", "", "contact phone")
	farmSaveCmd.Flags().StringVar(&farmSaveEmail, "email", "", "contact email")
	farmSaveCmd.Flags().StringVar(&farmSaveModules, "modules", "", "comma-separated enabled modules")

	farmCmd.AddCommand(farmListCmd)
	farmCmd.AddCommand(farmGetCmd)
	farmCmd.AddCommand(farmSaveCmd)
	farmCmd.AddCommand(farmDeleteCmd)
	farmCmd.AddCommand(farmUseCmd)
}
