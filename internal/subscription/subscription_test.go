package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriposplus/agripos/pkg/types"
)

func TestValidate_AcceptsKey(t *testing.T) {
	got, err := Validate(context.Background(), "AGRI-1234")
	require.NoError(t, err)
	assert.True(t, got.Active)

	expiry, err := time.Parse("2006-01-02", got.ExpiresAt)
	require.NoError(t, err)
	assert.True(t, expiry.After(time.Now()), "expiry must be in the future")
}

func TestValidate_RejectsEmptyKey(t *testing.T) {
	_, err := Validate(context.Background(), "   ")
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestValidate_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := Validate(ctx, "AGRI-1234")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), checkDelay)
}
