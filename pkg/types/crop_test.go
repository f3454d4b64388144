package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrop_AdvanceWalksLifecycle(t *testing.T) {
	c := &Crop{Status: CropPlanned}

	for _, want := range []string{CropPlanted, CropGrowing, CropHarvested} {
		require.NoError(t, c.Advance())
		assert.Equal(t, want, c.Status)
	}

	// Harvested is terminal.
	assert.ErrorIs(t, c.Advance(), ErrInvalidTransition)
}

func TestCrop_Fail(t *testing.T) {
	for _, status := range []string{CropPlanned, CropPlanted, CropGrowing} {
		c := &Crop{Status: status}
		require.NoError(t, c.Fail(), "fail from %s", status)
		assert.Equal(t, CropFailed, c.Status)
	}

	// Idempotent on a failed crop.
	c := &Crop{Status: CropFailed}
	require.NoError(t, c.Fail())

	// A harvested crop cannot fail.
	c = &Crop{Status: CropHarvested}
	assert.ErrorIs(t, c.Fail(), ErrInvalidTransition)

	// Failed is terminal: no advancing out of it.
	c = &Crop{Status: CropFailed}
	assert.ErrorIs(t, c.Advance(), ErrInvalidTransition)
}

func TestCrop_SetStatus(t *testing.T) {
	c := &Crop{Status: CropPlanned}

	// SetStatus does not check transition legality, only membership.
	require.NoError(t, c.SetStatus(CropHarvested))
	assert.Equal(t, CropHarvested, c.Status)

	assert.ErrorIs(t, c.SetStatus("wilted"), ErrInvalidStatus)
}
