// Init command for the agripos CLI.
// Implements: prd005-agripos-cli R2.1; prd008-configuration-directories R1.6, R2.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize agripos configuration and storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fail(exitSysError, "init", err)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fail(exitSysError, "init", err)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fail(exitSysError, "init", err)
		}

		// Opening the store creates the data directory, materializes the
		// schema, and seeds the sample farm on an empty database.
		s, err := openStore()
		if err != nil {
			fail(exitSysError, "init", err)
		}
		defer s.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			fail(exitSysError, "init", err)
		}

		st, err := loadState()
		if err != nil {
			fail(exitSysError, "init", err)
		}
		st.Initialized = true
		st.DarkMode = configDarkMode
		if st.ActiveFarmID == 0 {
			// Default to the first farm so entity commands work out of
			// the box after a fresh install.
			farms, err := s.Farms().List()
			if err != nil {
				fail(exitSysError, "init", err)
			}
			if len(farms) > 0 {
				st.ActiveFarmID = farms[0].ID
			}
		}
		if err := saveState(st); err != nil {
			fail(exitSysError, "init", err)
		}

		fmt.Println("AgriPOS initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		if st.ActiveFarmID != 0 {
			fmt.Fprintf(os.Stdout, "  active farm: %d\n", st.ActiveFarmID)
		}
		return nil
	},
}
