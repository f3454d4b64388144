package appstate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsFirstLaunch(t *testing.T) {
	got, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.False(t, got.Initialized)
	assert.Zero(t, got.ActiveFarmID)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	in := &State{
		Initialized:        true,
		DarkMode:           true,
		ActiveFarmID:       3,
		SubscriptionActive: true,
		SubscriptionExpiry: "2027-08-31",
	}
	require.NoError(t, in.Save(dir))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, got.Initialized)
	assert.True(t, got.DarkMode)
	assert.EqualValues(t, 3, got.ActiveFarmID)

	// Subscription state is derived per run, never restored from disk.
	assert.False(t, got.SubscriptionActive)
	assert.Empty(t, got.SubscriptionExpiry)
}

func TestSave_PersistsOnlyTheSubset(t *testing.T) {
	dir := t.TempDir()

	in := &State{Initialized: true, SubscriptionActive: true}
	require.NoError(t, in.Save(dir))

	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "initialized")
	assert.Contains(t, fields, "dark_mode")
	assert.Contains(t, fields, "active_farm_id")
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	in := &State{Initialized: true}
	require.NoError(t, in.Save(dir))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, got.Initialized)
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}
