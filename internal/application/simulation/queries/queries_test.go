package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solrange/fitsim/internal/application/simulation/queries"
	"github.com/solrange/fitsim/internal/domain/damage"
	"github.com/solrange/fitsim/internal/domain/fitting"
	"github.com/solrange/fitsim/internal/domain/shared"
	"github.com/solrange/fitsim/test/helpers"
)

// memoryFitRepository keeps fits in a map, enough for handler tests.
type memoryFitRepository struct {
	fits map[string]*fitting.Fit
}

func newMemoryFitRepository(fits ...*fitting.Fit) *memoryFitRepository {
	r := &memoryFitRepository{fits: make(map[string]*fitting.Fit)}
	for _, fit := range fits {
		r.fits[fit.ID] = fit
	}
	return r
}

func (r *memoryFitRepository) Save(_ context.Context, fit *fitting.Fit) error {
	r.fits[fit.ID] = fit
	return nil
}

func (r *memoryFitRepository) FindByID(_ context.Context, id string) (*fitting.Fit, error) {
	fit, ok := r.fits[id]
	if !ok {
		return nil, shared.NewFitNotFoundError(id)
	}
	return fit, nil
}

func (r *memoryFitRepository) List(_ context.Context) ([]*fitting.Fit, error) {
	fits := make([]*fitting.Fit, 0, len(r.fits))
	for _, fit := range r.fits {
		fits = append(fits, fit)
	}
	return fits, nil
}

func TestGetCapacitorStability_StableFit(t *testing.T) {
	// Arrange
	repo := newMemoryFitRepository(helpers.NewStableFitFixture("fit-1"))
	handler := queries.NewGetCapacitorStabilityHandler(repo, nil)

	// Act
	response, err := handler.Handle(context.Background(),
		&queries.GetCapacitorStabilityQuery{FitID: "fit-1"})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.GetCapacitorStabilityResponse)
	assert.Equal(t, "Test Cruiser", result.FitName)
	assert.True(t, result.Result.Stable)
}

func TestGetCapacitorStability_UnknownFit(t *testing.T) {
	handler := queries.NewGetCapacitorStabilityHandler(newMemoryFitRepository(), nil)

	_, err := handler.Handle(context.Background(),
		&queries.GetCapacitorStabilityQuery{FitID: "missing"})

	require.Error(t, err)
	var notFound *shared.FitNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetCapacitorStability_RequiresFitID(t *testing.T) {
	handler := queries.NewGetCapacitorStabilityHandler(newMemoryFitRepository(), nil)

	_, err := handler.Handle(context.Background(), &queries.GetCapacitorStabilityQuery{})

	assert.Error(t, err)
}

func TestGetDamageProfile(t *testing.T) {
	// Arrange: turret 40×2/2s = 40 DPS plus drones 10×2/4s = 5 DPS.
	repo := newMemoryFitRepository(helpers.NewArmedFitFixture("fit-1"))
	handler := queries.NewGetDamageProfileHandler(repo, damage.NewCalculator(nil))

	// Act
	response, err := handler.Handle(context.Background(),
		&queries.GetDamageProfileQuery{FitID: "fit-1"})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.GetDamageProfileResponse)
	assert.Equal(t, "Armed Cruiser", result.FitName)
	require.Len(t, result.Profile.Sources, 2)
	assert.InDelta(t, 45.0, result.Profile.TotalDPS, 1e-9)
}
