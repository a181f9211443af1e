package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	fittingCmd "github.com/solrange/fitsim/internal/application/fitting/commands"
	"github.com/solrange/fitsim/internal/domain/fitting"
)

// NewFitCommand creates the fit command group
func NewFitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Import and list resolved fit snapshots",
	}

	cmd.AddCommand(newFitImportCommand())
	cmd.AddCommand(newFitListCommand())

	return cmd
}

func newFitImportCommand() *cobra.Command {
	var filePath string
	var name string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a resolved fit snapshot from a JSON file",
		Long: `Import a resolved fit snapshot from a JSON file.
The snapshot must already carry fully resolved attributes; fitsim does not
run attribute stacking.

Example:
  fitsim fit import --file raven.json --name "Raven PvE"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if filePath == "" {
				return fmt.Errorf("--file flag is required")
			}

			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("failed to read fit file: %w", err)
			}

			var fit fitting.Fit
			if err := json.Unmarshal(data, &fit); err != nil {
				return fmt.Errorf("invalid fit JSON: %w", err)
			}
			if name != "" {
				fit.Name = name
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			response, err := app.m.Send(ctx, &fittingCmd.ImportFitCommand{Fit: &fit})
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			result := response.(*fittingCmd.ImportFitResponse)

			fmt.Println("✓ Fit imported")
			fmt.Printf("  Fit ID: %s\n", result.FitID)
			fmt.Printf("  Name:   %s\n", fit.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Path to the fit snapshot JSON (required)")
	cmd.Flags().StringVar(&name, "name", "", "Display name for the fit")

	return cmd
}

func newFitListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored fits",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			fits, err := app.fits.List(ctx)
			if err != nil {
				return err
			}

			if len(fits) == 0 {
				fmt.Println("No fits stored")
				return nil
			}
			for _, fit := range fits {
				fmt.Printf("%s  %s (%d modules, %d drones, %d fighter squads)\n",
					fit.ID, fit.Name, len(fit.Modules), len(fit.Drones), len(fit.Fighters))
			}
			return nil
		},
	}
}
