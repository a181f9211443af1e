package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	simQuery "github.com/solrange/fitsim/internal/application/simulation/queries"
	"github.com/solrange/fitsim/pkg/format"
)

// NewDPSCommand creates the dps command
func NewDPSCommand() *cobra.Command {
	var fitID string
	var includeSpecial bool

	cmd := &cobra.Command{
		Use:   "dps",
		Short: "Aggregate DPS and volley damage for a fit",
		Long: `Aggregate per-source and total DPS/volley figures for a stored fit,
split across the four damage types.

Example:
  fitsim dps --fit 6f1c9c0e --special`,
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

			response, err := app.m.Send(ctx, &simQuery.GetDamageProfileQuery{
				FitID:                   fitID,
				IncludeSpecialAbilities: includeSpecial,
			})
			if err != nil {
				return fmt.Errorf("aggregation failed: %w", err)
			}
			result := response.(*simQuery.GetDamageProfileResponse)
			p := result.Profile

			fmt.Printf("Damage — %s\n", result.FitName)
			for _, src := range p.Sources {
				label := string(src.Kind)
				if src.Slot != "" {
					label = fmt.Sprintf("%s %s", src.Kind, src.Slot)
				}
				fmt.Printf("  %-18s dps %-10s volley %-10s (with reload %s)\n",
					label, format.Number(src.DPS), format.Number(src.Volley), format.Number(src.DPSWithReload))
			}
			fmt.Printf("  Total DPS:    %s (with reload %s)\n", format.Number(p.TotalDPS), format.Number(p.TotalDPSWithReload))
			fmt.Printf("  Total volley: %s\n", format.Number(p.TotalVolley))
			fmt.Printf("  Split:        EM %s / Th %s / Kin %s / Exp %s\n",
				format.Percent(p.EMRatio), format.Percent(p.ThermalRatio),
				format.Percent(p.KineticRatio), format.Percent(p.ExplosiveRatio))

			return nil
		},
	}

	cmd.Flags().StringVar(&fitID, "fit", "", "Fit ID to aggregate (required)")
	cmd.Flags().BoolVar(&includeSpecial, "special", false,
		"Include fighter special abilities (missiles, bombs, kamikaze)")

	return cmd
}
