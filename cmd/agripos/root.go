// Root command for the agripos CLI.
// Implements: prd005-agripos-cli (R1, R6); prd008-configuration-directories (R1, R2).
package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agriposplus/agripos/internal/paths"
	"github.com/agriposplus/agripos/pkg/agripos"
)

// Exit codes per prd005-agripos-cli R8.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml. Set by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir  string
	configDarkMode bool
)

var rootCmd = &cobra.Command{
	Use:     "agripos",
	Short:   "AgriPOS is a local-first farm management and point-of-sale store",
	Version: agripos.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// An optional .env in the working directory can set
		// AGRIPOS_CONFIG_DIR / AGRIPOS_DATA_DIR; a missing file is fine.
		_ = godotenv.Load()

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDarkMode = cfg.GetBool(cfgKeyDarkMode)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: per-user agripos config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: per-user agripos data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(farmCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(livestockCmd)
	rootCmd.AddCommand(cropCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(saleCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(activateCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > AGRIPOS_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > AGRIPOS_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
