package fitting

// Attributes is a resolved attribute map for a single entity (ship, module,
// charge, drone or fighter squad). Values arrive fully stacked from the
// external dogma resolver; the engine only reads them.
type Attributes map[string]float64

// Get returns the attribute value, defaulting to 0 when absent.
// Missing attributes are never an error on computation paths.
func (a Attributes) Get(name string) float64 {
	return a[name]
}

// GetOr returns the attribute value, or def when absent.
func (a Attributes) GetOr(name string, def float64) float64 {
	if v, ok := a[name]; ok {
		return v
	}
	return def
}

// Multiplier returns the attribute value, defaulting to 1 when absent or zero.
// Used for damage/transfer multipliers where 0 would silently zero out a source.
func (a Attributes) Multiplier(name string) float64 {
	if v, ok := a[name]; ok && v != 0 {
		return v
	}
	return 1
}

// Has reports whether the attribute is present with a non-zero value.
func (a Attributes) Has(name string) bool {
	return a[name] != 0
}

// Ship attributes.
const (
	AttrCapacitorCapacity       = "capacitorCapacity"
	AttrRechargeRate            = "rechargeRate" // milliseconds, full notional refill
	AttrEnergyWarfareResistance = "energyWarfareResistance"

	// Character-level multiplier applied to missile weapons instead of the
	// module's own damageMultiplier.
	AttrMissileDamageMultiplier = "missileDamageMultiplier"
)

// Module attributes.
const (
	AttrCapacitorNeed           = "capacitorNeed"
	AttrModuleReactivationDelay = "moduleReactivationDelay" // milliseconds
	AttrReloadTime              = "reloadTime"              // milliseconds
	AttrPowerTransferAmount     = "powerTransferAmount"
	AttrDamageMultiplier        = "damageMultiplier"
)

// Charge attributes.
const (
	AttrCapacitorBonus = "capacitorBonus" // per-charge capacitor injected (group 76 boosters)
	AttrChargeRate     = "chargeRate"     // charges consumed per activation
)

// Damage attributes, shared by modules, charges and drones.
const (
	AttrEMDamage        = "emDamage"
	AttrThermalDamage   = "thermalDamage"
	AttrKineticDamage   = "kineticDamage"
	AttrExplosiveDamage = "explosiveDamage"
)

// Drone attributes.
const (
	AttrDroneCycleTime = "speed" // milliseconds between attacks, dogma legacy name
)

// Fighter squadron ability attributes. Each ability channel carries its own
// duration, damage spread and multiplier.
const (
	AttrFighterAttackDuration    = "fighterAbilityAttackMissileDuration"
	AttrFighterAttackDamageEM    = "fighterAbilityAttackMissileDamageEM"
	AttrFighterAttackDamageTherm = "fighterAbilityAttackMissileDamageTherm"
	AttrFighterAttackDamageKin   = "fighterAbilityAttackMissileDamageKin"
	AttrFighterAttackDamageExp   = "fighterAbilityAttackMissileDamageExp"
	AttrFighterAttackMultiplier  = "fighterAbilityAttackMissileDamageMultiplier"

	AttrFighterMissilesDuration    = "fighterAbilityMissilesDuration"
	AttrFighterMissilesDamageEM    = "fighterAbilityMissilesDamageEM"
	AttrFighterMissilesDamageTherm = "fighterAbilityMissilesDamageTherm"
	AttrFighterMissilesDamageKin   = "fighterAbilityMissilesDamageKin"
	AttrFighterMissilesDamageExp   = "fighterAbilityMissilesDamageExp"
	AttrFighterMissilesMultiplier  = "fighterAbilityMissilesDamageMultiplier"

	AttrFighterBombType     = "fighterAbilityLaunchBombType" // item type id of the bomb
	AttrFighterBombDuration = "fighterAbilityLaunchBombDuration"

	AttrFighterKamikazeDamageEM    = "fighterAbilityKamikazeDamageEM"
	AttrFighterKamikazeDamageTherm = "fighterAbilityKamikazeDamageTherm"
	AttrFighterKamikazeDamageKin   = "fighterAbilityKamikazeDamageKin"
	AttrFighterKamikazeDamageExp   = "fighterAbilityKamikazeDamageExp"
	AttrFighterKamikazeMultiplier  = "fighterAbilityKamikazeDamageMultiplier"
)
