// Shared helpers for agripos CLI commands.
// Implements: prd005-agripos-cli (R3, R8, R9).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/agriposplus/agripos/internal/appstate"
	"github.com/agriposplus/agripos/internal/store"
	"github.com/agriposplus/agripos/pkg/types"
)

// newLogger builds the CLI logger. Quiet by default; --verbose switches
// to the human-readable development encoder.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// openStore resolves the data directory and opens the store. The caller
// must defer s.Close().
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	s, err := store.Open(types.Config{DataDir: dataDir}, newLogger())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

// loadState reads the persisted application state from the config dir.
func loadState() (*appstate.State, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return appstate.Load(configDir)
}

// saveState writes the application state back to the config dir.
func saveState(st *appstate.State) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	return st.Save(configDir)
}

// resolveFarmID returns the farm to operate on: the --farm flag when
// given, otherwise the active farm from the persisted state.
func resolveFarmID(flagVal int64) (int64, error) {
	if flagVal != 0 {
		return flagVal, nil
	}

	st, err := loadState()
	if err != nil {
		return 0, err
	}
	if st.ActiveFarmID == 0 {
		return 0, fmt.Errorf("no farm selected; pass --farm or run 'agripos farm use <id>'")
	}
	return st.ActiveFarmID, nil
}

// parseFarmID parses a numeric farm ID argument.
func parseFarmID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid farm id %q", arg)
	}
	return id, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// fail prints a prefixed error and exits with the given code.
func fail(code int, prefix string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
	os.Exit(code)
}
