package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/tableplanner/internal/models"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <plan.yaml|plan.json>",
		Short: "Check a plan file for layout and seating inconsistencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			if err := models.ValidateContents(plan.Tables, plan.Guests, models.MaxBulkItems); err != nil {
				return err
			}

			capacity, seated := 0, 0
			for _, t := range plan.Tables {
				capacity += t.Capacity
			}
			for _, g := range plan.Guests {
				if g.IsAssigned() {
					seated++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d tables (%d seats), %d guests, %d seated\n",
				len(plan.Tables), capacity, len(plan.Guests), seated)
			return nil
		},
	}
}
