package capacitor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solrange/fitsim/internal/domain/capacitor"
	"github.com/solrange/fitsim/internal/domain/fitting"
)

func newShip(capacity, rechargeMS float64) *fitting.ResolvedShip {
	return &fitting.ResolvedShip{
		Capacity:       capacity,
		RechargeTimeMS: rechargeMS,
		Attributes:     fitting.Attributes{},
	}
}

func activeModule(need, cycleMS float64) *fitting.ResolvedModule {
	return &fitting.ResolvedModule{
		Status: fitting.StatusActive,
		Attributes: fitting.Attributes{
			fitting.AttrCapacitorNeed: need,
			"speed":                   cycleMS,
		},
	}
}

func TestSimulate_NoModules_IsStable(t *testing.T) {
	// 1000 GJ, 300s recharge: peak recharge = 10*1000/300*0.5*0.5 ≈ 8.33 GJ/s
	fit := &fitting.Fit{Ship: newShip(1000, 300_000)}

	result := capacitor.NewSimulator().Simulate(fit)

	require.True(t, result.Stable)
	assert.False(t, result.BudgetExhausted)
	assert.InDelta(t, 8.333, result.DeltaPerSecond, 0.01)
	// With zero cost the bisection collapses to its lower bound.
	assert.Equal(t, 0.0, result.StableFraction)
	assert.True(t, math.IsInf(result.LastsSeconds, 1))
}

func TestSimulate_StableFit_FindsEquilibrium(t *testing.T) {
	// Cost 5 GJ/s against ~8.33 GJ/s peak recharge: stable with a real
	// equilibrium on the ascending branch.
	fit := &fitting.Fit{
		Ship:    newShip(1000, 300_000),
		Modules: []*fitting.ResolvedModule{activeModule(10, 2000)},
	}

	result := capacitor.NewSimulator().Simulate(fit)

	require.True(t, result.Stable)
	assert.Greater(t, result.StableFraction, 0.0)
	assert.LessOrEqual(t, result.StableFraction, 0.25)

	// The found level satisfies recharge(x*) ≈ cost.
	recharge := 10 * 1000 / 300.0 * math.Sqrt(result.StableFraction) * (1 - math.Sqrt(result.StableFraction))
	assert.InDelta(t, 5.0, recharge, 1e-3)
}

func TestSimulate_UnstableFit_ReportsFiniteLasts(t *testing.T) {
	// Cost 5 GJ/s, peak recharge 10*400/2000*0.25 = 0.5 GJ/s: unstable.
	fit := &fitting.Fit{
		Ship:    newShip(400, 2_000_000),
		Modules: []*fitting.ResolvedModule{activeModule(10, 2000)},
	}

	result := capacitor.NewSimulator().Simulate(fit)

	require.False(t, result.Stable)
	assert.False(t, result.BudgetExhausted)
	assert.Negative(t, result.DeltaPerSecond)
	assert.False(t, math.IsInf(result.LastsSeconds, 1))
	assert.Greater(t, result.LastsSeconds, 0.0)
	assert.Less(t, result.LastsSeconds, capacitor.DefaultMaxSimulatedSeconds)
}

func TestSimulate_OfflineModules_DrawNothing(t *testing.T) {
	m := activeModule(1000, 1000)
	m.Status = fitting.StatusOnline

	fit := &fitting.Fit{
		Ship:    newShip(100, 500_000),
		Modules: []*fitting.ResolvedModule{m},
	}

	result := capacitor.NewSimulator().Simulate(fit)

	require.True(t, result.Stable)
	assert.Equal(t, 0.0, result.StableFraction)
}

func TestSimulate_BudgetExhausted_TreatedAsStable(t *testing.T) {
	// A huge buffer with no recharge: depletion is real but takes longer
	// than the 8h horizon, so the verdict is "effectively infinite" with
	// the budget flag set.
	fit := &fitting.Fit{
		Ship:    newShip(1e9, 0),
		Modules: []*fitting.ResolvedModule{activeModule(1, 1000)},
	}

	result := capacitor.NewSimulator().Simulate(fit)

	require.True(t, result.Stable)
	assert.True(t, result.BudgetExhausted)
	assert.True(t, math.IsInf(result.LastsSeconds, 1))
}

func TestSimulate_StepCeiling_TreatedAsStable(t *testing.T) {
	fit := &fitting.Fit{
		Ship:    newShip(1e9, 0),
		Modules: []*fitting.ResolvedModule{activeModule(1, 1000)},
	}

	// 10 simulated seconds allow only a handful of events.
	result := capacitor.NewSimulatorWithLimits(0, 10).Simulate(fit)

	require.True(t, result.Stable)
	assert.True(t, result.BudgetExhausted)
}

func TestSimulate_CapacitorBooster_CountsAsBoost(t *testing.T) {
	// Booster: 8 charges × 400 GJ over 12s×8 + 10s reload ≈ 30.2 GJ/s,
	// covering a 20 GJ/s drain a tiny ship could never recharge away.
	booster := &fitting.ResolvedModule{
		Status:  fitting.StatusActive,
		GroupID: fitting.GroupCapacitorBooster,
		Attributes: fitting.Attributes{
			"speed":                 12_000.0,
			fitting.AttrReloadTime:  10_000.0,
		},
		Charge: &fitting.Charge{
			Quantity: 8,
			Attributes: fitting.Attributes{
				fitting.AttrCapacitorBonus: 400,
				fitting.AttrChargeRate:     1,
			},
		},
	}

	fit := &fitting.Fit{
		Ship:    newShip(500, 1_000_000),
		Modules: []*fitting.ResolvedModule{booster, activeModule(40, 2000)},
	}

	result := capacitor.NewSimulator().Simulate(fit)

	require.True(t, result.Stable)
	assert.False(t, result.BudgetExhausted)
	assert.InDelta(t, 30.19+10*500/1000.0*0.25-20, result.DeltaPerSecond, 0.1)
}

func TestSimulate_EnergyTransfer_GainCreditedAsBoost(t *testing.T) {
	transfer := &fitting.ResolvedModule{
		Status:  fitting.StatusActive,
		GroupID: fitting.GroupEnergyTransfer,
		Attributes: fitting.Attributes{
			fitting.AttrCapacitorNeed:       5,
			fitting.AttrPowerTransferAmount: 50,
			"duration":                      5000.0,
		},
	}

	fit := &fitting.Fit{
		Ship:    newShip(1000, 300_000),
		Modules: []*fitting.ResolvedModule{transfer, activeModule(20, 2000)},
	}

	// Cost 5/5 + 20/2 = 11 GJ/s, boost 50/5 = 10 GJ/s, peak 8.33 GJ/s.
	result := capacitor.NewSimulator().Simulate(fit)

	require.True(t, result.Stable)
	assert.InDelta(t, 8.333+10-11, result.DeltaPerSecond, 0.01)
}

func TestSimulate_DepletionLevelNeverNegativeBeforeEnd(t *testing.T) {
	// Deterministic: the capacitor only goes below zero at the reported
	// terminal instant. Run the same unstable fit twice to also assert
	// the simulation is pure.
	fit := &fitting.Fit{
		Ship:    newShip(400, 2_000_000),
		Modules: []*fitting.ResolvedModule{activeModule(10, 2000)},
	}

	sim := capacitor.NewSimulator()
	first := sim.Simulate(fit)
	second := sim.Simulate(fit)

	require.False(t, first.Stable)
	assert.Equal(t, first, second)
}
