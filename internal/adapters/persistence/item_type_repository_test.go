package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solrange/fitsim/internal/adapters/persistence"
	"github.com/solrange/fitsim/internal/domain/fitting"
	"github.com/solrange/fitsim/test/helpers"
)

func TestItemTypeRepository_BatchedDamageLookup(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormItemTypeRepository(db)

	require.NoError(t, repo.Save(context.Background(), &persistence.ItemTypeModel{
		TypeID: 900, ExplosiveDamage: 1000,
	}))
	require.NoError(t, repo.Save(context.Background(), &persistence.ItemTypeModel{
		TypeID: 901, ThermalDamage: 800, KineticDamage: 200,
	}))

	// Act: one call resolves both, unknown ids are simply absent
	attrs, err := repo.DamageAttributes(context.Background(), []int64{900, 901, 999})

	// Assert
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	assert.Equal(t, 1000.0, attrs[900].Get(fitting.AttrExplosiveDamage))
	assert.Equal(t, 800.0, attrs[901].Get(fitting.AttrThermalDamage))
	assert.Equal(t, 200.0, attrs[901].Get(fitting.AttrKineticDamage))
	assert.NotContains(t, attrs, int64(999))
}

func TestItemTypeRepository_EmptyRequest(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormItemTypeRepository(db)

	attrs, err := repo.DamageAttributes(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, attrs)
}
