package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	mutationCmd "github.com/solrange/fitsim/internal/application/mutation/commands"
	"github.com/solrange/fitsim/internal/domain/mutation"
)

// mutationFile is the JSON input for "mutation apply": the mutaplasmid's
// bounds table plus the percentage edits to commit.
type mutationFile struct {
	Slot          string `json:"slot"`
	MutaplasmidID int64  `json:"mutaplasmidId"`
	Attributes    []struct {
		ID          int64   `json:"id"`
		DisplayName string  `json:"displayName"`
		Icon        string  `json:"icon"`
		MinValue    float64 `json:"minValue"`
		MaxValue    float64 `json:"maxValue"`
		HighIsGood  bool    `json:"highIsGood"`
	} `json:"attributes"`
	Edits map[int64]string `json:"edits"` // attribute id → percentage text
}

// NewMutationCommand creates the mutation command group
func NewMutationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutation",
		Short: "Apply or clear mutaplasmid overrides on a module",
	}

	cmd.AddCommand(newMutationApplyCommand())
	cmd.AddCommand(newMutationClearCommand())

	return cmd
}

func newMutationApplyCommand() *cobra.Command {
	var fitID string
	var filePath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Validate and apply mutation edits from a JSON file",
		Long: `Validate and apply mutation edits from a JSON file.
Edits are percentages; they are converted to raw multipliers and checked
against the mutaplasmid bounds before anything is persisted.

Example:
  fitsim mutation apply --fit 6f1c9c0e --file mutation.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fitID == "" || filePath == "" {
				return fmt.Errorf("--fit and --file flags are required")
			}

			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("failed to read mutation file: %w", err)
			}
			var input mutationFile
			if err := json.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("invalid mutation JSON: %w", err)
			}

			bounds := make([]*mutation.Attribute, 0, len(input.Attributes))
			for _, a := range input.Attributes {
				bounds = append(bounds, &mutation.Attribute{
					ID:          a.ID,
					DisplayName: a.DisplayName,
					Icon:        a.Icon,
					MinValue:    a.MinValue,
					MaxValue:    a.MaxValue,
					HighIsGood:  a.HighIsGood,
				})
			}
			edits := make([]mutationCmd.AttributeEdit, 0, len(input.Edits))
			for id, percent := range input.Edits {
				edits = append(edits, mutationCmd.AttributeEdit{AttributeID: id, Percent: percent})
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			response, err := app.m.Send(ctx, &mutationCmd.ApplyMutationCommand{
				FitID:         fitID,
				Slot:          input.Slot,
				MutaplasmidID: input.MutaplasmidID,
				Bounds:        bounds,
				Edits:         edits,
			})
			if err != nil {
				return fmt.Errorf("mutation apply failed: %w", err)
			}
			result := response.(*mutationCmd.ApplyMutationResponse)

			fmt.Printf("✓ Mutation %s\n", result.State)
			for id, multiplier := range result.Overrides {
				fmt.Printf("  attribute %d → %+.2f%%\n", id, mutation.MultiplierToPercent(multiplier))
			}
			if result.Changed {
				fmt.Println("  Overrides changed — external recomputation required")
			} else {
				fmt.Println("  No change to persisted overrides")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&fitID, "fit", "", "Fit ID (required)")
	cmd.Flags().StringVar(&filePath, "file", "", "Path to the mutation JSON (required)")

	return cmd
}

func newMutationClearCommand() *cobra.Command {
	var fitID string
	var slot string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove a module slot's mutation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fitID == "" || slot == "" {
				return fmt.Errorf("--fit and --slot flags are required")
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			response, err := app.m.Send(ctx, &mutationCmd.ClearMutationCommand{FitID: fitID, Slot: slot})
			if err != nil {
				return fmt.Errorf("mutation clear failed: %w", err)
			}
			result := response.(*mutationCmd.ClearMutationResponse)

			if result.Cleared {
				fmt.Println("✓ Mutation cleared")
			} else {
				fmt.Println("Nothing to clear")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fitID, "fit", "", "Fit ID (required)")
	cmd.Flags().StringVar(&slot, "slot", "", "Module slot (required)")

	return cmd
}
