package fitting

// ResolvedShip is the immutable, fully resolved ship snapshot the engines
// compute against. It is rebuilt externally whenever the loadout changes;
// the engines never mutate it.
type ResolvedShip struct {
	TypeID int64

	// Capacity is the capacitor size in GJ.
	Capacity float64

	// RechargeTimeMS is the notional full-refill time in milliseconds.
	RechargeTimeMS float64

	// EnergyWarfareResistance scales incoming energy-warfare effects.
	// Resolved externally, carried for display.
	EnergyWarfareResistance float64

	Attributes Attributes
}

// RechargeTimeSeconds returns the recharge time converted to seconds.
func (s *ResolvedShip) RechargeTimeSeconds() float64 {
	return s.RechargeTimeMS / 1000
}
