package queries

import (
	"context"
	"fmt"

	"github.com/solrange/fitsim/internal/application/mediator"
	"github.com/solrange/fitsim/internal/domain/damage"
	"github.com/solrange/fitsim/internal/domain/fitting"
)

// GetDamageProfileQuery represents a query for a fit's DPS/volley breakdown
type GetDamageProfileQuery struct {
	FitID string // Required: fit snapshot to aggregate

	// IncludeSpecialAbilities adds fighter missiles/bomb/kamikaze channels
	IncludeSpecialAbilities bool
}

// GetDamageProfileResponse represents the aggregation result
type GetDamageProfileResponse struct {
	FitName string
	Profile *damage.Profile
}

// GetDamageProfileHandler handles the GetDamageProfile query
type GetDamageProfileHandler struct {
	fitRepo    fitting.FitRepository
	calculator *damage.Calculator
}

// NewGetDamageProfileHandler creates a new GetDamageProfileHandler
func NewGetDamageProfileHandler(fitRepo fitting.FitRepository, calculator *damage.Calculator) *GetDamageProfileHandler {
	return &GetDamageProfileHandler{
		fitRepo:    fitRepo,
		calculator: calculator,
	}
}

// Handle executes the GetDamageProfile query
func (h *GetDamageProfileHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetDamageProfileQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetDamageProfileQuery")
	}

	if query.FitID == "" {
		return nil, fmt.Errorf("fit_id is required")
	}

	fit, err := h.fitRepo.FindByID(ctx, query.FitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fit: %w", err)
	}

	profile, err := h.calculator.Calculate(ctx, fit, damage.Options{
		IncludeSpecialAbilities: query.IncludeSpecialAbilities,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate damage: %w", err)
	}

	return &GetDamageProfileResponse{
		FitName: fit.Name,
		Profile: profile,
	}, nil
}
