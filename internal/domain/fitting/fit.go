package fitting

import "context"

// Fit is the full resolved loadout snapshot the engines consume: one ship,
// its fitted modules, drones and fighter squadrons. All attribute stacking
// has already happened externally; a Fit is read-only from the engine's
// point of view.
type Fit struct {
	ID       string
	Name     string
	Ship     *ResolvedShip
	Modules  []*ResolvedModule
	Drones   []*ResolvedDrone
	Fighters []*ResolvedFighterSquad
}

// FitRepository loads and stores fit snapshots.
type FitRepository interface {
	Save(ctx context.Context, fit *Fit) error
	FindByID(ctx context.Context, id string) (*Fit, error)
	List(ctx context.Context) ([]*Fit, error)
}
