package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solrange/fitsim/internal/domain/fitting"
)

// GormItemTypeRepository implements damage.BombDamageProvider using GORM.
// All requested type ids resolve in a single query, which is what lets the
// damage aggregator batch bomb lookups across squadrons.
type GormItemTypeRepository struct {
	db *gorm.DB
}

// NewGormItemTypeRepository creates a new GormItemTypeRepository
func NewGormItemTypeRepository(db *gorm.DB) *GormItemTypeRepository {
	return &GormItemTypeRepository{db: db}
}

// DamageAttributes resolves damage attributes for a set of item type ids in
// one round trip. Unknown ids are simply absent from the result map.
func (r *GormItemTypeRepository) DamageAttributes(ctx context.Context, typeIDs []int64) (map[int64]fitting.Attributes, error) {
	if len(typeIDs) == 0 {
		return map[int64]fitting.Attributes{}, nil
	}

	var models []ItemTypeModel
	if err := r.db.WithContext(ctx).Where("type_id IN ?", typeIDs).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query item types: %w", err)
	}

	attrs := make(map[int64]fitting.Attributes, len(models))
	for _, model := range models {
		attrs[model.TypeID] = fitting.Attributes{
			fitting.AttrEMDamage:        model.EMDamage,
			fitting.AttrThermalDamage:   model.ThermalDamage,
			fitting.AttrKineticDamage:   model.KineticDamage,
			fitting.AttrExplosiveDamage: model.ExplosiveDamage,
		}
	}
	return attrs, nil
}

// Save stores or replaces an item type (used by seeding and tests)
func (r *GormItemTypeRepository) Save(ctx context.Context, model *ItemTypeModel) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model).Error
}
