package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/solrange/fitsim/internal/domain/mutation"
)

const mutationStepAttrID int64 = 6

type mutationContext struct {
	overlay *mutation.Mutation
	err     error
}

func (mc *mutationContext) reset() {
	mc.overlay = nil
	mc.err = nil
}

func (mc *mutationContext) anUnmutatedModule() error {
	mc.overlay = mutation.NewMutation()
	return nil
}

func (mc *mutationContext) selectMutaplasmid(min, max float64) error {
	if mc.overlay == nil {
		mc.overlay = mutation.NewMutation()
	}
	mc.overlay.SelectMutaplasmid(47702, []*mutation.Attribute{
		{ID: mutationStepAttrID, DisplayName: "Capacitor Need", MinValue: min, MaxValue: max},
	})
	return nil
}

func (mc *mutationContext) aStagedModule(min, max float64) error {
	mc.overlay = mutation.NewMutation()
	return mc.selectMutaplasmid(min, max)
}

func (mc *mutationContext) commitValue(text string) error {
	if mc.overlay == nil {
		return fmt.Errorf("no module defined")
	}
	attr := mc.overlay.Attribute(mutationStepAttrID)
	if attr == nil {
		return fmt.Errorf("no mutaplasmid selected")
	}
	multiplier, err := mutation.ValidateInput(attr, text)
	if err != nil {
		mc.err = err
		return nil
	}
	mc.err = mc.overlay.SetValue(mutationStepAttrID, multiplier)
	return nil
}

func (mc *mutationContext) clearAttributeValue() error {
	mc.overlay.ClearValue(mutationStepAttrID)
	return nil
}

func (mc *mutationContext) clearMutation() error {
	mc.overlay.Clear()
	return nil
}

func (mc *mutationContext) stateShouldBe(name string) error {
	if mc.overlay == nil {
		return fmt.Errorf("no module defined")
	}
	if got := mc.overlay.State().String(); got != name {
		return fmt.Errorf("expected state %s, got %s", name, got)
	}
	return nil
}

func (mc *mutationContext) noOverridesRecorded() error {
	if overrides := mc.overlay.Overrides(); len(overrides) != 0 {
		return fmt.Errorf("expected no overrides, got %v", overrides)
	}
	return nil
}

func (mc *mutationContext) overrideMultiplierShouldBe(want float64) error {
	overrides := mc.overlay.Overrides()
	got, ok := overrides[mutationStepAttrID]
	if !ok {
		return fmt.Errorf("no override recorded for attribute %d", mutationStepAttrID)
	}
	if math.Abs(got-want) > 1e-9 {
		return fmt.Errorf("expected multiplier %.4f, got %.4f", want, got)
	}
	return nil
}

func (mc *mutationContext) editShouldBeRejected() error {
	if mc.err == nil {
		return fmt.Errorf("expected the edit to be rejected")
	}
	return nil
}

// InitializeMutationScenario registers the mutation lifecycle steps
func InitializeMutationScenario(sc *godog.ScenarioContext) {
	mc := &mutationContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		mc.reset()
		return ctx, nil
	})

	sc.Step(`^an unmutated module$`, mc.anUnmutatedModule)
	sc.Step(`^I select a mutaplasmid with bounds ([0-9.]+) to ([0-9.]+)$`, mc.selectMutaplasmid)
	sc.Step(`^a staged module with bounds ([0-9.]+) to ([0-9.]+)$`, mc.aStagedModule)
	sc.Step(`^a committed value of "([^"]*)"$`, mc.commitValue)
	sc.Step(`^I commit the value "([^"]*)"$`, mc.commitValue)
	sc.Step(`^I clear the attribute value$`, mc.clearAttributeValue)
	sc.Step(`^I clear the mutation$`, mc.clearMutation)
	sc.Step(`^the mutation state should be "([^"]*)"$`, mc.stateShouldBe)
	sc.Step(`^no overrides should be recorded$`, mc.noOverridesRecorded)
	sc.Step(`^the override multiplier should be ([0-9.]+)$`, mc.overrideMultiplierShouldBe)
	sc.Step(`^the edit should be rejected$`, mc.editShouldBeRejected)
}
