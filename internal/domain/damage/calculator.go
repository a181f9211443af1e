package damage

import (
	"context"
	"fmt"

	"github.com/solrange/fitsim/internal/domain/fitting"
)

// SourceKind identifies what produced a damage contribution.
type SourceKind string

const (
	SourceWeapon  SourceKind = "WEAPON"
	SourceDrone   SourceKind = "DRONE"
	SourceFighter SourceKind = "FIGHTER"
)

// TypeDamage is a damage amount split across the four damage types.
type TypeDamage struct {
	EM        float64
	Thermal   float64
	Kinetic   float64
	Explosive float64
}

// Total returns the sum across all four damage types.
func (d TypeDamage) Total() float64 {
	return d.EM + d.Thermal + d.Kinetic + d.Explosive
}

func (d TypeDamage) scale(factor float64) TypeDamage {
	return TypeDamage{
		EM:        d.EM * factor,
		Thermal:   d.Thermal * factor,
		Kinetic:   d.Kinetic * factor,
		Explosive: d.Explosive * factor,
	}
}

func (d *TypeDamage) add(other TypeDamage) {
	d.EM += other.EM
	d.Thermal += other.Thermal
	d.Kinetic += other.Kinetic
	d.Explosive += other.Explosive
}

// Source is the per-source damage breakdown.
type Source struct {
	Kind   SourceKind
	TypeID int64
	Slot   string // weapon slot, empty for drones and fighters

	Volley float64
	DPS    float64

	// DPSWithReload amortizes a full reload into the cycle. Equals DPS for
	// sources without a reload concept.
	DPSWithReload float64
}

// Profile is the aggregate damage output for a fit.
type Profile struct {
	Sources []Source

	TotalVolley        float64
	TotalDPS           float64
	TotalDPSWithReload float64

	// Steady DPS split by damage type, and the corresponding ratios of the
	// total. Ratios are 0 when total DPS is 0.
	TypeDPS        TypeDamage
	EMRatio        float64
	ThermalRatio   float64
	KineticRatio   float64
	ExplosiveRatio float64
}

// Options controls optional damage channels.
type Options struct {
	// IncludeSpecialAbilities adds fighter missiles, bombs and kamikaze
	// channels on top of the base attack channel.
	IncludeSpecialAbilities bool
}

// BombDamageProvider resolves damage attributes for a set of bomb item type
// ids in a single round trip. The aggregator batches all distinct bomb types
// used by any squadron into one call.
type BombDamageProvider interface {
	DamageAttributes(ctx context.Context, typeIDs []int64) (map[int64]fitting.Attributes, error)
}

// Calculator computes per-source and aggregate DPS/volley figures for a
// resolved fit. Pure over the snapshot: two runs on the same input produce
// identical results.
type Calculator struct {
	bombs BombDamageProvider
}

// NewCalculator creates a damage calculator. The bomb provider may be nil
// when fighter bomb abilities are not needed.
func NewCalculator(bombs BombDamageProvider) *Calculator {
	return &Calculator{bombs: bombs}
}

// Calculate aggregates weapon, drone and fighter damage for the fit.
func (c *Calculator) Calculate(ctx context.Context, fit *fitting.Fit, opts Options) (*Profile, error) {
	p := &Profile{}
	var typeDPS TypeDamage

	for _, m := range fit.Modules {
		src, perType, ok := c.weaponDamage(fit.Ship, m)
		if !ok {
			continue
		}
		p.Sources = append(p.Sources, src)
		typeDPS.add(perType)
	}

	for _, d := range fit.Drones {
		src, perType, ok := droneDamage(d)
		if !ok {
			continue
		}
		p.Sources = append(p.Sources, src)
		typeDPS.add(perType)
	}

	fighterSources, fighterTypeDPS, err := c.fighterDamage(ctx, fit.Fighters, opts)
	if err != nil {
		return nil, err
	}
	p.Sources = append(p.Sources, fighterSources...)
	typeDPS.add(fighterTypeDPS)

	for _, src := range p.Sources {
		p.TotalVolley += src.Volley
		p.TotalDPS += src.DPS
		p.TotalDPSWithReload += src.DPSWithReload
	}

	p.TypeDPS = typeDPS
	if p.TotalDPS > 0 {
		p.EMRatio = typeDPS.EM / p.TotalDPS
		p.ThermalRatio = typeDPS.Thermal / p.TotalDPS
		p.KineticRatio = typeDPS.Kinetic / p.TotalDPS
		p.ExplosiveRatio = typeDPS.Explosive / p.TotalDPS
	}
	return p, nil
}

// weaponDamage computes a single weapon module's contribution. Inactive
// modules and modules without damage attributes report ok=false.
func (c *Calculator) weaponDamage(ship *fitting.ResolvedShip, m *fitting.ResolvedModule) (Source, TypeDamage, bool) {
	if !m.Status.IsActive() {
		return Source{}, TypeDamage{}, false
	}

	attrs := m.DamageAttributes()
	base := readTypeDamage(attrs, AttrSetWeapon)
	if base.Total() == 0 {
		return Source{}, TypeDamage{}, false
	}

	// Missile charges scale with the character-level multiplier; everything
	// else uses the module's own damageMultiplier.
	var multiplier float64
	if m.Charge != nil && m.Charge.RequiresSkill(fitting.SkillMissileLauncherOperation) {
		multiplier = ship.Attributes.Multiplier(fitting.AttrMissileDamageMultiplier)
	} else {
		multiplier = m.Attributes.Multiplier(fitting.AttrDamageMultiplier)
	}

	scaled := base.scale(multiplier)
	cycle := fitting.CycleDurationMS(m.Attributes) / 1000

	src := Source{
		Kind:   SourceWeapon,
		TypeID: m.TypeID,
		Slot:   m.Slot,
		Volley: scaled.Total(),
	}

	var perType TypeDamage
	if cycle > 0 {
		src.DPS = scaled.Total() / cycle
		perType = scaled.scale(1 / cycle)
	}
	src.DPSWithReload = src.DPS

	if m.Charge != nil && m.Charge.Quantity > 0 && cycle > 0 {
		clip := m.Charge.Quantity
		fullCycle := cycle*clip + m.Attributes.Get(fitting.AttrReloadTime)/1000
		if fullCycle > 0 {
			src.DPSWithReload = scaled.Total() * clip / fullCycle
		}
	}

	return src, perType, true
}

// droneDamage computes a drone stack's contribution. Only the active subset
// of the stack fires; drones never reload.
func droneDamage(d *fitting.ResolvedDrone) (Source, TypeDamage, bool) {
	if d.ActiveCount <= 0 {
		return Source{}, TypeDamage{}, false
	}

	base := readTypeDamage(d.Attributes, AttrSetWeapon)
	multiplier := d.Attributes.Multiplier(fitting.AttrDamageMultiplier)
	perDrone := base.scale(multiplier)
	volley := perDrone.scale(float64(d.ActiveCount))
	if volley.Total() == 0 {
		return Source{}, TypeDamage{}, false
	}

	cycle := d.Attributes.Get(fitting.AttrDroneCycleTime) / 1000

	src := Source{
		Kind:   SourceDrone,
		TypeID: d.TypeID,
		Volley: volley.Total(),
	}
	var perType TypeDamage
	if cycle > 0 {
		src.DPS = volley.Total() / cycle
		perType = volley.scale(1 / cycle)
	}
	src.DPSWithReload = src.DPS

	return src, perType, true
}

// fighterDamage computes all squadron contributions. Squads are merged by
// type id first, and bomb damage for every distinct bomb type is resolved in
// one batched provider call.
func (c *Calculator) fighterDamage(ctx context.Context, squads []*fitting.ResolvedFighterSquad, opts Options) ([]Source, TypeDamage, error) {
	merged := fitting.MergeFighterSquads(squads)
	if len(merged) == 0 {
		return nil, TypeDamage{}, nil
	}

	bombAttrs, err := c.resolveBombs(ctx, merged, opts)
	if err != nil {
		return nil, TypeDamage{}, err
	}

	var sources []Source
	var totalTypeDPS TypeDamage

	for _, squad := range merged {
		qty := float64(squad.Quantity)
		if qty <= 0 {
			continue
		}

		src := Source{Kind: SourceFighter, TypeID: squad.TypeID}
		var typeDPS TypeDamage

		addChannel := func(base TypeDamage, multiplier, durationMS float64) {
			scaled := base.scale(multiplier * qty)
			src.Volley += scaled.Total()
			if durationMS > 0 {
				src.DPS += scaled.Total() / (durationMS / 1000)
				typeDPS.add(scaled.scale(1 / (durationMS / 1000)))
			}
		}

		// Base attack channel, always on.
		addChannel(
			readTypeDamage(squad.Attributes, AttrSetFighterAttack),
			squad.Attributes.Multiplier(fitting.AttrFighterAttackMultiplier),
			squad.Attributes.Get(fitting.AttrFighterAttackDuration),
		)

		if opts.IncludeSpecialAbilities {
			addChannel(
				readTypeDamage(squad.Attributes, AttrSetFighterMissiles),
				squad.Attributes.Multiplier(fitting.AttrFighterMissilesMultiplier),
				squad.Attributes.Get(fitting.AttrFighterMissilesDuration),
			)

			if bombID := squad.BombTypeID(); bombID != 0 {
				if attrs, ok := bombAttrs[bombID]; ok {
					addChannel(
						readTypeDamage(attrs, AttrSetWeapon),
						1,
						squad.Attributes.Get(fitting.AttrFighterBombDuration),
					)
				}
			}

			// Kamikaze fires exactly once: volley only, never steady DPS.
			kamikaze := readTypeDamage(squad.Attributes, AttrSetFighterKamikaze)
			kamikazeMult := squad.Attributes.Multiplier(fitting.AttrFighterKamikazeMultiplier)
			src.Volley += kamikaze.scale(kamikazeMult * qty).Total()
		}

		src.DPSWithReload = src.DPS
		if src.Volley == 0 && src.DPS == 0 {
			continue
		}
		sources = append(sources, src)
		totalTypeDPS.add(typeDPS)
	}

	return sources, totalTypeDPS, nil
}

// resolveBombs collects the distinct bomb type ids across all squads and
// resolves their damage attributes in a single provider round trip.
func (c *Calculator) resolveBombs(ctx context.Context, squads []*fitting.ResolvedFighterSquad, opts Options) (map[int64]fitting.Attributes, error) {
	if !opts.IncludeSpecialAbilities {
		return nil, nil
	}

	seen := make(map[int64]bool)
	var ids []int64
	for _, squad := range squads {
		if id := squad.BombTypeID(); id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if c.bombs == nil {
		return nil, fmt.Errorf("fit uses fighter bombs but no bomb damage provider is configured")
	}

	attrs, err := c.bombs.DamageAttributes(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bomb damage attributes: %w", err)
	}
	return attrs, nil
}
