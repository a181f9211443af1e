package helpers

import (
	"github.com/solrange/fitsim/internal/domain/fitting"
)

// NewStableFitFixture builds a small cruiser fit whose recharge comfortably
// covers its capacitor draw.
func NewStableFitFixture(id string) *fitting.Fit {
	return &fitting.Fit{
		ID:   id,
		Name: "Test Cruiser",
		Ship: &fitting.ResolvedShip{
			TypeID:         620,
			Capacity:       1000,
			RechargeTimeMS: 300_000,
			Attributes:     fitting.Attributes{},
		},
		Modules: []*fitting.ResolvedModule{
			{
				TypeID: 100,
				Slot:   "MedSlot0",
				Status: fitting.StatusActive,
				Attributes: fitting.Attributes{
					fitting.AttrCapacitorNeed: 10,
					"duration":                2000.0,
				},
			},
		},
	}
}

// NewUnstableFitFixture builds a fit that drains far faster than it recharges.
func NewUnstableFitFixture(id string) *fitting.Fit {
	return &fitting.Fit{
		ID:   id,
		Name: "Cap Hungry Frigate",
		Ship: &fitting.ResolvedShip{
			TypeID:         587,
			Capacity:       400,
			RechargeTimeMS: 2_000_000,
			Attributes:     fitting.Attributes{},
		},
		Modules: []*fitting.ResolvedModule{
			{
				TypeID: 101,
				Slot:   "MedSlot0",
				Status: fitting.StatusActive,
				Attributes: fitting.Attributes{
					fitting.AttrCapacitorNeed: 10,
					"duration":                2000.0,
				},
			},
		},
	}
}

// NewArmedFitFixture builds a fit with a turret and an active drone pair so
// damage aggregation has something to report.
func NewArmedFitFixture(id string) *fitting.Fit {
	fit := NewStableFitFixture(id)
	fit.Name = "Armed Cruiser"
	fit.Modules = append(fit.Modules, &fitting.ResolvedModule{
		TypeID: 200,
		Slot:   "HiSlot0",
		Status: fitting.StatusActive,
		Attributes: fitting.Attributes{
			"speed":                      2000.0,
			fitting.AttrDamageMultiplier: 2,
			fitting.AttrThermalDamage:    40,
		},
	})
	fit.Drones = []*fitting.ResolvedDrone{
		{
			TypeID:      300,
			Quantity:    2,
			ActiveCount: 2,
			Attributes: fitting.Attributes{
				fitting.AttrKineticDamage:  10,
				fitting.AttrDroneCycleTime: 4000.0,
			},
		},
	}
	return fit
}
