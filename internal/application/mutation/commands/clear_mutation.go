package commands

import (
	"context"
	"fmt"

	"github.com/solrange/fitsim/internal/application/mediator"
	"github.com/solrange/fitsim/internal/domain/mutation"
)

// ClearMutationCommand removes a module slot's mutation entirely.
type ClearMutationCommand struct {
	FitID string
	Slot  string
}

// ClearMutationResponse reports whether anything was actually cleared.
type ClearMutationResponse struct {
	Cleared bool
}

// ClearMutationHandler handles the ClearMutation command
type ClearMutationHandler struct {
	store mutation.OverrideStore
}

// NewClearMutationHandler creates a new ClearMutationHandler
func NewClearMutationHandler(store mutation.OverrideStore) *ClearMutationHandler {
	return &ClearMutationHandler{store: store}
}

// Handle executes the ClearMutation command
func (h *ClearMutationHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ClearMutationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ClearMutationCommand")
	}

	if cmd.FitID == "" || cmd.Slot == "" {
		return nil, fmt.Errorf("fit_id and slot are required")
	}

	mutaplasmidID, overrides, err := h.store.FindOverrides(ctx, cmd.FitID, cmd.Slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted overrides: %w", err)
	}
	if mutaplasmidID == 0 && len(overrides) == 0 {
		return &ClearMutationResponse{Cleared: false}, nil
	}

	if err := h.store.ClearOverrides(ctx, cmd.FitID, cmd.Slot); err != nil {
		return nil, fmt.Errorf("failed to clear overrides: %w", err)
	}

	return &ClearMutationResponse{Cleared: true}, nil
}
