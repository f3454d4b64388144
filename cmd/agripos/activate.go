// Activate command validates a subscription key.
// Implements: prd007-subscription.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agriposplus/agripos/internal/subscription"
)

var activateCmd = &cobra.Command{
	Use:   "activate <key>",
	Short: "Activate a subscription key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := subscription.Validate(cmd.Context(), args[0])
		if err != nil {
			fail(exitUserError, "activate", err)
		}

		st, err := loadState()
		if err != nil {
			fail(exitSysError, "activate", err)
		}
		st.SubscriptionActive = status.Active
		st.SubscriptionExpiry = status.ExpiresAt
		if err := saveState(st); err != nil {
			fail(exitSysError, "activate", err)
		}

		if flagJSON {
			printJSON(status)
			return nil
		}
		fmt.Printf("Subscription active until %s\n", status.ExpiresAt)
		return nil
	},
}
