package queries

import (
	"context"
	"fmt"

	"github.com/solrange/fitsim/internal/application/mediator"
	"github.com/solrange/fitsim/internal/domain/capacitor"
	"github.com/solrange/fitsim/internal/domain/fitting"
)

// GetCapacitorStabilityQuery represents a query for a fit's capacitor stability
type GetCapacitorStabilityQuery struct {
	FitID string // Required: fit snapshot to simulate
}

// GetCapacitorStabilityResponse represents the simulation result
type GetCapacitorStabilityResponse struct {
	FitName string
	Result  *capacitor.Result
}

// GetCapacitorStabilityHandler handles the GetCapacitorStability query
type GetCapacitorStabilityHandler struct {
	fitRepo   fitting.FitRepository
	simulator *capacitor.Simulator
}

// NewGetCapacitorStabilityHandler creates a new GetCapacitorStabilityHandler
func NewGetCapacitorStabilityHandler(fitRepo fitting.FitRepository, simulator *capacitor.Simulator) *GetCapacitorStabilityHandler {
	if simulator == nil {
		simulator = capacitor.NewSimulator()
	}
	return &GetCapacitorStabilityHandler{
		fitRepo:   fitRepo,
		simulator: simulator,
	}
}

// Handle executes the GetCapacitorStability query
func (h *GetCapacitorStabilityHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetCapacitorStabilityQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetCapacitorStabilityQuery")
	}

	if query.FitID == "" {
		return nil, fmt.Errorf("fit_id is required")
	}

	fit, err := h.fitRepo.FindByID(ctx, query.FitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fit: %w", err)
	}

	return &GetCapacitorStabilityResponse{
		FitName: fit.Name,
		Result:  h.simulator.Simulate(fit),
	}, nil
}
