package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/solrange/fitsim/internal/domain/capacitor"
	"github.com/solrange/fitsim/internal/domain/fitting"
)

type capacitorContext struct {
	fit    *fitting.Fit
	result *capacitor.Result
}

func (cc *capacitorContext) reset() {
	cc.fit = nil
	cc.result = nil
}

func (cc *capacitorContext) aShipWithCapacitor(capacity, rechargeSeconds int) error {
	cc.fit = &fitting.Fit{
		Ship: &fitting.ResolvedShip{
			Capacity:       float64(capacity),
			RechargeTimeMS: float64(rechargeSeconds) * 1000,
			Attributes:     fitting.Attributes{},
		},
	}
	return nil
}

func (cc *capacitorContext) addModule(status fitting.ModuleStatus, need, cycleSeconds int) error {
	if cc.fit == nil {
		return fmt.Errorf("no ship defined")
	}
	cc.fit.Modules = append(cc.fit.Modules, &fitting.ResolvedModule{
		Status: status,
		Attributes: fitting.Attributes{
			fitting.AttrCapacitorNeed: float64(need),
			"duration":                float64(cycleSeconds) * 1000,
		},
	})
	return nil
}

func (cc *capacitorContext) anActiveModule(need, cycleSeconds int) error {
	return cc.addModule(fitting.StatusActive, need, cycleSeconds)
}

func (cc *capacitorContext) anOnlineModule(need, cycleSeconds int) error {
	return cc.addModule(fitting.StatusOnline, need, cycleSeconds)
}

func (cc *capacitorContext) iSimulate() error {
	if cc.fit == nil {
		return fmt.Errorf("no ship defined")
	}
	cc.result = capacitor.NewSimulator().Simulate(cc.fit)
	return nil
}

func (cc *capacitorContext) shouldBeStable() error {
	if cc.result == nil {
		return fmt.Errorf("simulation has not run")
	}
	if !cc.result.Stable {
		return fmt.Errorf("expected stable, got delta %.2f GJ/s", cc.result.DeltaPerSecond)
	}
	return nil
}

func (cc *capacitorContext) shouldNotBeStable() error {
	if cc.result == nil {
		return fmt.Errorf("simulation has not run")
	}
	if cc.result.Stable {
		return fmt.Errorf("expected unstable, got stable at %.1f%%", cc.result.StableFraction*100)
	}
	return nil
}

func (cc *capacitorContext) neverDepletes() error {
	if !math.IsInf(cc.result.LastsSeconds, 1) {
		return fmt.Errorf("expected infinite duration, got %.1fs", cc.result.LastsSeconds)
	}
	return nil
}

func (cc *capacitorContext) stableLevelBetween(lo, hi int) error {
	fraction := cc.result.StableFraction * 100
	if fraction < float64(lo) || fraction > float64(hi) {
		return fmt.Errorf("stable level %.1f%% outside [%d%%, %d%%]", fraction, lo, hi)
	}
	return nil
}

func (cc *capacitorContext) depletesInFiniteTime() error {
	if math.IsInf(cc.result.LastsSeconds, 1) {
		return fmt.Errorf("expected finite depletion time")
	}
	if cc.result.LastsSeconds <= 0 {
		return fmt.Errorf("expected positive depletion time, got %.1fs", cc.result.LastsSeconds)
	}
	return nil
}

// InitializeCapacitorScenario registers the capacitor stability steps
func InitializeCapacitorScenario(sc *godog.ScenarioContext) {
	cc := &capacitorContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	sc.Step(`^a ship with (\d+) GJ capacitor and (\d+) second recharge time$`, cc.aShipWithCapacitor)
	sc.Step(`^an active module drawing (\d+) GJ every (\d+) seconds$`, cc.anActiveModule)
	sc.Step(`^an online module drawing (\d+) GJ every (\d+) seconds$`, cc.anOnlineModule)
	sc.Step(`^I simulate capacitor stability$`, cc.iSimulate)
	sc.Step(`^the fit should be stable$`, cc.shouldBeStable)
	sc.Step(`^the fit should not be stable$`, cc.shouldNotBeStable)
	sc.Step(`^the capacitor should never deplete$`, cc.neverDepletes)
	sc.Step(`^the stable level should be between (\d+) and (\d+) percent$`, cc.stableLevelBetween)
	sc.Step(`^the capacitor should deplete in a finite time$`, cc.depletesInFiniteTime)
}
