package commands

import (
	"context"
	"fmt"

	"github.com/solrange/fitsim/internal/application/mediator"
	"github.com/solrange/fitsim/internal/domain/mutation"
	"github.com/solrange/fitsim/internal/domain/shared"
)

// AttributeEdit is one user-entered percentage for a mutation attribute.
type AttributeEdit struct {
	AttributeID int64
	Percent     string // raw input text, validated here
}

// ApplyMutationCommand applies a set of mutation edits to a module slot.
type ApplyMutationCommand struct {
	FitID         string
	Slot          string
	MutaplasmidID int64

	// Bounds is the mutaplasmid's attribute bounds table, ordered by
	// display name as the external resolver provides it.
	Bounds []*mutation.Attribute

	Edits []AttributeEdit
}

// ApplyMutationResponse reports the commit outcome.
type ApplyMutationResponse struct {
	State     mutation.State
	Overrides map[int64]float64

	// Changed is true when the persisted override map differs and external
	// recomputation must be triggered.
	Changed bool
}

// ApplyMutationHandler validates mutation edits, commits them into the
// overlay and persists the override map when it actually changed.
type ApplyMutationHandler struct {
	store mutation.OverrideStore
	clock shared.Clock
}

// NewApplyMutationHandler creates a new ApplyMutationHandler
func NewApplyMutationHandler(store mutation.OverrideStore, clock shared.Clock) *ApplyMutationHandler {
	return &ApplyMutationHandler{store: store, clock: clock}
}

// Handle executes the ApplyMutation command
func (h *ApplyMutationHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ApplyMutationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ApplyMutationCommand")
	}

	if cmd.FitID == "" || cmd.Slot == "" {
		return nil, fmt.Errorf("fit_id and slot are required")
	}
	if cmd.MutaplasmidID == 0 {
		return nil, fmt.Errorf("mutaplasmid_id is required")
	}

	_, persisted, err := h.store.FindOverrides(ctx, cmd.FitID, cmd.Slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted overrides: %w", err)
	}

	overlay := mutation.NewMutation()
	overlay.SelectMutaplasmid(cmd.MutaplasmidID, cmd.Bounds)

	editor := mutation.NewEditor(overlay, persisted, h.clock)
	defer editor.Close()

	for _, edit := range cmd.Edits {
		if err := editor.Commit(edit.AttributeID, edit.Percent); err != nil {
			// Validation failure blocks the whole commit, no state change.
			return nil, err
		}
	}

	overrides, changed := editor.Result()

	// A staged overlay (no values set) must not be persisted as applied.
	if overlay.IsApplied() && changed {
		if err := h.store.SaveOverrides(ctx, cmd.FitID, cmd.Slot, cmd.MutaplasmidID, overrides); err != nil {
			return nil, fmt.Errorf("failed to persist overrides: %w", err)
		}
	}
	if !overlay.IsApplied() && len(persisted) > 0 {
		if err := h.store.ClearOverrides(ctx, cmd.FitID, cmd.Slot); err != nil {
			return nil, fmt.Errorf("failed to clear overrides: %w", err)
		}
		changed = true
	}

	return &ApplyMutationResponse{
		State:     overlay.State(),
		Overrides: overrides,
		Changed:   changed,
	}, nil
}
