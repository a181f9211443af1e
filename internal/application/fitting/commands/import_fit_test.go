package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solrange/fitsim/internal/adapters/persistence"
	"github.com/solrange/fitsim/internal/application/fitting/commands"
	"github.com/solrange/fitsim/internal/domain/fitting"
	"github.com/solrange/fitsim/test/helpers"
)

func TestImportFit_AssignsIDAndStores(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFitRepository(db)
	handler := commands.NewImportFitHandler(repo)

	fit := helpers.NewStableFitFixture("")

	// Act
	response, err := handler.Handle(context.Background(), &commands.ImportFitCommand{Fit: fit})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.ImportFitResponse)
	assert.NotEmpty(t, result.FitID)

	stored, err := repo.FindByID(context.Background(), result.FitID)
	require.NoError(t, err)
	assert.Equal(t, "Test Cruiser", stored.Name)
}

func TestImportFit_KeepsProvidedID(t *testing.T) {
	db := helpers.NewTestDB(t)
	handler := commands.NewImportFitHandler(persistence.NewGormFitRepository(db))

	response, err := handler.Handle(context.Background(),
		&commands.ImportFitCommand{Fit: helpers.NewStableFitFixture("my-fit")})

	require.NoError(t, err)
	assert.Equal(t, "my-fit", response.(*commands.ImportFitResponse).FitID)
}

func TestImportFit_RejectsMissingShip(t *testing.T) {
	db := helpers.NewTestDB(t)
	handler := commands.NewImportFitHandler(persistence.NewGormFitRepository(db))

	_, err := handler.Handle(context.Background(),
		&commands.ImportFitCommand{Fit: &fitting.Fit{Name: "shipless"}})

	assert.Error(t, err)
}

func TestImportFit_RejectsInvalidDroneCounts(t *testing.T) {
	db := helpers.NewTestDB(t)
	handler := commands.NewImportFitHandler(persistence.NewGormFitRepository(db))

	fit := helpers.NewStableFitFixture("fit-1")
	fit.Drones = []*fitting.ResolvedDrone{{TypeID: 300, Quantity: 2, ActiveCount: 3}}

	_, err := handler.Handle(context.Background(), &commands.ImportFitCommand{Fit: fit})

	assert.Error(t, err)
}
