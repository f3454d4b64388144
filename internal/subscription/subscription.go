// Package subscription checks license keys. The check is a local stub:
// it simulates the latency of a remote validation call and accepts any
// non-empty key. A real licensing backend can replace Validate without
// touching callers.
//
// Implements: prd007-subscription
package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agriposplus/agripos/pkg/types"
)

// checkDelay approximates the round trip of a remote validation call.
const checkDelay = time.Second

// Status is the outcome of a key validation.
type Status struct {
	Active    bool   `json:"active"`
	ExpiresAt string `json:"expires_at"`
}

// Validate checks key and returns its subscription status. It blocks
// for about a second unless ctx is cancelled first.
func Validate(ctx context.Context, key string) (Status, error) {
	if strings.TrimSpace(key) == "" {
		return Status{}, fmt.Errorf("%w: empty subscription key", types.ErrInvalidData)
	}

	select {
	case <-time.After(checkDelay):
	case <-ctx.Done():
		return Status{}, ctx.Err()
	}

	return Status{
		Active:    true,
		ExpiresAt: time.Now().UTC().AddDate(1, 0, 0).Format("2006-01-02"),
	}, nil
}
