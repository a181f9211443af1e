package damage

import "github.com/solrange/fitsim/internal/domain/fitting"

// attrSet names the four damage-type attributes of one damage channel.
type attrSet struct {
	em, thermal, kinetic, explosive string
}

var (
	// AttrSetWeapon covers modules, charges, drones and bomb items.
	AttrSetWeapon = attrSet{
		em:        fitting.AttrEMDamage,
		thermal:   fitting.AttrThermalDamage,
		kinetic:   fitting.AttrKineticDamage,
		explosive: fitting.AttrExplosiveDamage,
	}

	AttrSetFighterAttack = attrSet{
		em:        fitting.AttrFighterAttackDamageEM,
		thermal:   fitting.AttrFighterAttackDamageTherm,
		kinetic:   fitting.AttrFighterAttackDamageKin,
		explosive: fitting.AttrFighterAttackDamageExp,
	}

	AttrSetFighterMissiles = attrSet{
		em:        fitting.AttrFighterMissilesDamageEM,
		thermal:   fitting.AttrFighterMissilesDamageTherm,
		kinetic:   fitting.AttrFighterMissilesDamageKin,
		explosive: fitting.AttrFighterMissilesDamageExp,
	}

	AttrSetFighterKamikaze = attrSet{
		em:        fitting.AttrFighterKamikazeDamageEM,
		thermal:   fitting.AttrFighterKamikazeDamageTherm,
		kinetic:   fitting.AttrFighterKamikazeDamageKin,
		explosive: fitting.AttrFighterKamikazeDamageExp,
	}
)

// readTypeDamage reads one channel's damage spread from an attribute map.
func readTypeDamage(attrs fitting.Attributes, set attrSet) TypeDamage {
	return TypeDamage{
		EM:        attrs.Get(set.em),
		Thermal:   attrs.Get(set.thermal),
		Kinetic:   attrs.Get(set.kinetic),
		Explosive: attrs.Get(set.explosive),
	}
}
