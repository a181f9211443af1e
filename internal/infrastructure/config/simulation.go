package config

// SimulationConfig holds the capacitor simulation ceilings. The defaults
// match the engine's hard limits; lowering them trades accuracy of the
// "effectively infinite" verdict for a cheaper worst case.
type SimulationConfig struct {
	// Maximum simulated time for the depletion loop, in seconds
	MaxSimulatedSeconds float64 `mapstructure:"max_simulated_seconds" validate:"min=1"`

	// Maximum depletion loop iterations
	MaxSteps int `mapstructure:"max_steps" validate:"min=1"`
}
