package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/solrange/fitsim/internal/application/mediator"
	"github.com/solrange/fitsim/internal/domain/fitting"
	"github.com/solrange/fitsim/internal/domain/shared"
)

// ImportFitCommand stores an externally resolved fit snapshot so the
// simulation queries can run against it by id.
type ImportFitCommand struct {
	Fit *fitting.Fit
}

// ImportFitResponse returns the stored fit's id.
type ImportFitResponse struct {
	FitID string
}

// ImportFitHandler handles the ImportFit command
type ImportFitHandler struct {
	fitRepo fitting.FitRepository
}

// NewImportFitHandler creates a new ImportFitHandler
func NewImportFitHandler(fitRepo fitting.FitRepository) *ImportFitHandler {
	return &ImportFitHandler{fitRepo: fitRepo}
}

// Handle executes the ImportFit command
func (h *ImportFitHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ImportFitCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ImportFitCommand")
	}

	if cmd.Fit == nil || cmd.Fit.Ship == nil {
		return nil, shared.NewInvalidFitDataError("fit snapshot must include a resolved ship")
	}
	for _, d := range cmd.Fit.Drones {
		if d.ActiveCount < 0 || d.ActiveCount > d.Quantity {
			return nil, shared.NewInvalidFitDataError(fmt.Sprintf(
				"drone %d: active count %d outside [0, %d]", d.TypeID, d.ActiveCount, d.Quantity))
		}
	}

	if cmd.Fit.ID == "" {
		cmd.Fit.ID = uuid.New().String()
	}

	if err := h.fitRepo.Save(ctx, cmd.Fit); err != nil {
		return nil, fmt.Errorf("failed to save fit: %w", err)
	}

	return &ImportFitResponse{FitID: cmd.Fit.ID}, nil
}
