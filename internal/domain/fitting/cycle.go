package fitting

// durationAttributes is the ordered list of candidate cycle-duration
// attribute names. Different ability families (turrets/launchers, plain
// duration modules, the electronic-warfare burst projectors) each publish
// their cycle under a different name, and at most one of them is ever
// populated on a given module, so reading the max across all candidates
// yields "whichever one applies".
var durationAttributes = []string{
	"speed",
	"duration",
	"durationECMJammerBurstProjector",
	"durationWeaponDisruptionBurstProjector",
	"durationTargetIlluminationBurstProjector",
	"durationSensorDampeningBurstProjector",
}

// CycleDurationMS resolves the cycle duration of a module or ability in
// milliseconds. Returns 0 when no duration attribute is present.
func CycleDurationMS(attrs Attributes) float64 {
	var max float64
	for _, name := range durationAttributes {
		if v := attrs.Get(name); v > max {
			max = v
		}
	}
	return max
}

// FullCycleSeconds resolves cycle duration plus reactivation delay,
// converted to seconds. This is the denominator for per-second capacitor
// cost and for steady DPS.
func FullCycleSeconds(attrs Attributes) float64 {
	return (CycleDurationMS(attrs) + attrs.Get(AttrModuleReactivationDelay)) / 1000
}
