package mutation

import "context"

// OverrideStore is the external persistence contract for applied mutation
// overrides. The engine hands override maps to the store; the store owns
// persistence and triggers attribute re-resolution. A Staged mutation must
// never reach the store.
type OverrideStore interface {
	// SaveOverrides persists the applied override map for a module slot.
	SaveOverrides(ctx context.Context, fitID, slot string, mutaplasmidID int64, overrides map[int64]float64) error

	// FindOverrides returns the persisted overrides for a module slot.
	// A module with no persisted mutation returns mutaplasmidID 0 and a
	// nil map, not an error.
	FindOverrides(ctx context.Context, fitID, slot string) (mutaplasmidID int64, overrides map[int64]float64, err error)

	// ClearOverrides removes any persisted mutation for a module slot.
	ClearOverrides(ctx context.Context, fitID, slot string) error
}
