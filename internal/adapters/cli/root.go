package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fitsim",
		Short: "fitsim - ship fitting combat simulation",
		Long: `fitsim answers the three questions a fit designer cares about:
is the capacitor sustainable, what DPS does the fit deliver, and what does
a mutaplasmid do to a module.

Examples:
  fitsim fit import --file raven.json --name "Raven PvE"
  fitsim fit list
  fitsim capacitor --fit 6f1c9c0e
  fitsim dps --fit 6f1c9c0e --special
  fitsim mutation apply --fit 6f1c9c0e --file mutation.json
  fitsim mutation clear --fit 6f1c9c0e --slot HiSlot0`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ., ./configs, /etc/fitsim)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewFitCommand())
	rootCmd.AddCommand(NewCapacitorCommand())
	rootCmd.AddCommand(NewDPSCommand())
	rootCmd.AddCommand(NewMutationCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
