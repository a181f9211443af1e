package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	simQuery "github.com/solrange/fitsim/internal/application/simulation/queries"
	"github.com/solrange/fitsim/pkg/format"
)

// NewCapacitorCommand creates the capacitor command
func NewCapacitorCommand() *cobra.Command {
	var fitID string

	cmd := &cobra.Command{
		Use:   "capacitor",
		Short: "Simulate capacitor stability for a fit",
		Long: `Simulate capacitor stability for a stored fit.
Reports the equilibrium level for stable fits, or how long the capacitor
lasts for unstable ones.

Example:
  fitsim capacitor --fit 6f1c9c0e`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fitID == "" {
				return fmt.Errorf("--fit flag is required")
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			response, err := app.m.Send(ctx, &simQuery.GetCapacitorStabilityQuery{FitID: fitID})
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}
			result := response.(*simQuery.GetCapacitorStabilityResponse)
			r := result.Result

			fmt.Printf("Capacitor — %s\n", result.FitName)
			fmt.Printf("  Net delta:  %s GJ/s\n", format.Number(r.DeltaPerSecond))
			if r.Stable {
				if r.BudgetExhausted {
					fmt.Println("  Stable:     yes (simulation budget exhausted without depletion)")
				} else {
					fmt.Println("  Stable:     yes")
					fmt.Printf("  Stable at:  %s\n", format.Percent(r.StableFraction))
				}
			} else {
				fmt.Println("  Stable:     no")
				fmt.Printf("  Lasts:      %s\n", format.Duration(r.LastsSeconds))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&fitID, "fit", "", "Fit ID to simulate (required)")

	return cmd
}
