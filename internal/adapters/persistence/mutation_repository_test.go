package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solrange/fitsim/internal/adapters/persistence"
	"github.com/solrange/fitsim/test/helpers"
)

func TestMutationRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMutationRepository(db)
	overrides := map[int64]float64{6: 1.1, 30: 0.95}

	// Act - Save
	err := repo.SaveOverrides(context.Background(), "fit-1", "LoSlot2", 47702, overrides)

	// Assert
	require.NoError(t, err)

	// Act - FindOverrides
	mutaplasmidID, found, err := repo.FindOverrides(context.Background(), "fit-1", "LoSlot2")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(47702), mutaplasmidID)
	assert.Equal(t, overrides, found)
}

func TestMutationRepository_RefusesEmptyOverrides(t *testing.T) {
	// A staged mutation has no values; persisting it as applied is a bug.
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMutationRepository(db)

	err := repo.SaveOverrides(context.Background(), "fit-1", "LoSlot2", 47702, map[int64]float64{})

	assert.Error(t, err)
}

func TestMutationRepository_NoRowMeansUnmutated(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMutationRepository(db)

	mutaplasmidID, overrides, err := repo.FindOverrides(context.Background(), "fit-1", "LoSlot2")

	require.NoError(t, err)
	assert.Zero(t, mutaplasmidID)
	assert.Nil(t, overrides)
}

func TestMutationRepository_SaveReplacesPerSlot(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMutationRepository(db)

	require.NoError(t, repo.SaveOverrides(context.Background(), "fit-1", "LoSlot2", 47702, map[int64]float64{6: 1.1}))
	require.NoError(t, repo.SaveOverrides(context.Background(), "fit-1", "LoSlot3", 47702, map[int64]float64{6: 0.9}))

	// Act: overwrite only LoSlot2
	require.NoError(t, repo.SaveOverrides(context.Background(), "fit-1", "LoSlot2", 47703, map[int64]float64{6: 1.2}))

	// Assert
	mutaplasmidID, overrides, err := repo.FindOverrides(context.Background(), "fit-1", "LoSlot2")
	require.NoError(t, err)
	assert.Equal(t, int64(47703), mutaplasmidID)
	assert.Equal(t, map[int64]float64{6: 1.2}, overrides)

	_, other, err := repo.FindOverrides(context.Background(), "fit-1", "LoSlot3")
	require.NoError(t, err)
	assert.Equal(t, map[int64]float64{6: 0.9}, other)
}

func TestMutationRepository_ClearOverrides(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMutationRepository(db)
	require.NoError(t, repo.SaveOverrides(context.Background(), "fit-1", "LoSlot2", 47702, map[int64]float64{6: 1.1}))

	// Act
	require.NoError(t, repo.ClearOverrides(context.Background(), "fit-1", "LoSlot2"))

	// Assert
	mutaplasmidID, overrides, err := repo.FindOverrides(context.Background(), "fit-1", "LoSlot2")
	require.NoError(t, err)
	assert.Zero(t, mutaplasmidID)
	assert.Nil(t, overrides)

	// Clearing again is harmless.
	assert.NoError(t, repo.ClearOverrides(context.Background(), "fit-1", "LoSlot2"))
}
