package fitting

import "fmt"

// ModuleStatus is the ordinal activation level of a fitted module.
// It is assigned and range-validated externally; the engines only read it.
type ModuleStatus int

const (
	StatusOffline ModuleStatus = iota
	StatusOnline
	StatusActive
	StatusOverload
)

var moduleStatusNames = map[ModuleStatus]string{
	StatusOffline:  "OFFLINE",
	StatusOnline:   "ONLINE",
	StatusActive:   "ACTIVE",
	StatusOverload: "OVERLOAD",
}

// Name returns the status name
func (s ModuleStatus) Name() string {
	if name, ok := moduleStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s ModuleStatus) String() string {
	return s.Name()
}

// IsActive reports whether the module is cycling (ACTIVE or OVERLOAD).
// Modules at ONLINE or below draw no capacitor and deal no damage.
func (s ModuleStatus) IsActive() bool {
	return s > StatusOnline
}

// ParseModuleStatus parses a status name string into a ModuleStatus
func ParseModuleStatus(name string) (ModuleStatus, error) {
	for status, n := range moduleStatusNames {
		if n == name {
			return status, nil
		}
	}
	return StatusOffline, fmt.Errorf("invalid module status: %s", name)
}

// Module group ids the capacitor simulator special-cases.
const (
	GroupCapacitorBooster int64 = 76
	GroupEnergyTransfer   int64 = 68
)

// SkillMissileLauncherOperation gates the missile damage scaling path:
// charges requiring it use the character-level missile damage multiplier
// instead of the module's own damageMultiplier.
const SkillMissileLauncherOperation int64 = 3319

// Charge is an ammo-like sub-item loaded into a module.
type Charge struct {
	TypeID     int64
	Attributes Attributes

	// Quantity is the number of charges in the clip, 0 when the charge has
	// no discrete quantity (crystals, scripts).
	Quantity float64

	// RequiredSkills are the skill type ids the charge demands. Consumed
	// for the missile scaling path, never enforced here.
	RequiredSkills []int64
}

// RequiresSkill reports whether the charge's required-skill set contains
// the given skill type id.
func (c *Charge) RequiresSkill(skillID int64) bool {
	for _, id := range c.RequiredSkills {
		if id == skillID {
			return true
		}
	}
	return false
}

// ResolvedModule is a fitted module with externally resolved attributes.
// Status and slot legality are decided before the snapshot reaches the
// engines.
type ResolvedModule struct {
	TypeID     int64
	Slot       string
	Status     ModuleStatus
	GroupID    int64
	Attributes Attributes
	Charge     *Charge

	// RequiredSkills of the module itself. Consumed, not enforced.
	RequiredSkills []int64
}

// DamageAttributes returns the attribute map damage should be read from:
// the loaded charge when it carries any non-zero damage attribute,
// otherwise the module's own attributes.
func (m *ResolvedModule) DamageAttributes() Attributes {
	if m.Charge == nil {
		return m.Attributes
	}
	for _, name := range []string{AttrEMDamage, AttrThermalDamage, AttrKineticDamage, AttrExplosiveDamage} {
		if m.Charge.Attributes.Has(name) {
			return m.Charge.Attributes
		}
	}
	return m.Attributes
}
