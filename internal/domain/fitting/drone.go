package fitting

// ResolvedDrone is a drone stack in the drone bay.
//
// Precondition (documented, not re-validated): 0 ≤ ActiveCount ≤ Quantity.
// Only the active subset contributes to DPS.
type ResolvedDrone struct {
	TypeID      int64
	Attributes  Attributes
	Quantity    int
	ActiveCount int
}

// ResolvedFighterSquad is a fighter squadron. Squadrons of the same type id
// across multiple launch tubes are merged (quantities summed) before DPS is
// computed.
type ResolvedFighterSquad struct {
	TypeID     int64
	Attributes Attributes
	Quantity   int
}

// BombTypeID returns the item type id of the squadron's bomb ability,
// or 0 when the squadron carries no bomb.
func (f *ResolvedFighterSquad) BombTypeID() int64 {
	return int64(f.Attributes.Get(AttrFighterBombType))
}

// MergeFighterSquads merges squadrons sharing a type id by summing their
// quantities. Attribute maps of same-type squads are identical by
// construction, so the first one seen is kept. Input order is preserved.
func MergeFighterSquads(squads []*ResolvedFighterSquad) []*ResolvedFighterSquad {
	merged := make([]*ResolvedFighterSquad, 0, len(squads))
	byType := make(map[int64]*ResolvedFighterSquad, len(squads))
	for _, squad := range squads {
		if existing, ok := byType[squad.TypeID]; ok {
			existing.Quantity += squad.Quantity
			continue
		}
		copied := *squad
		byType[squad.TypeID] = &copied
		merged = append(merged, &copied)
	}
	return merged
}
