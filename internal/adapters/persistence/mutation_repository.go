package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMutationRepository implements mutation.OverrideStore using GORM
type GormMutationRepository struct {
	db *gorm.DB
}

// NewGormMutationRepository creates a new GormMutationRepository
func NewGormMutationRepository(db *gorm.DB) *GormMutationRepository {
	return &GormMutationRepository{db: db}
}

// SaveOverrides persists the applied override map for a module slot
func (r *GormMutationRepository) SaveOverrides(ctx context.Context, fitID, slot string, mutaplasmidID int64, overrides map[int64]float64) error {
	if len(overrides) == 0 {
		return fmt.Errorf("refusing to persist empty override map for %s/%s: staged mutations are not applied", fitID, slot)
	}

	encoded, err := encodeOverrides(overrides)
	if err != nil {
		return err
	}

	model := MutationModel{
		FitID:         fitID,
		Slot:          slot,
		MutaplasmidID: mutaplasmidID,
		Overrides:     encoded,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fit_id"}, {Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"mutaplasmid_id", "overrides", "updated_at"}),
		}).
		Create(&model).Error
}

// FindOverrides returns the persisted overrides for a module slot.
// No persisted mutation yields (0, nil, nil).
func (r *GormMutationRepository) FindOverrides(ctx context.Context, fitID, slot string) (int64, map[int64]float64, error) {
	var model MutationModel
	err := r.db.WithContext(ctx).First(&model, "fit_id = ? AND slot = ?", fitID, slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil, nil
	}
	if err != nil {
		return 0, nil, fmt.Errorf("failed to query mutation: %w", err)
	}

	overrides, err := decodeOverrides(model.Overrides)
	if err != nil {
		return 0, nil, err
	}
	return model.MutaplasmidID, overrides, nil
}

// ClearOverrides removes any persisted mutation for a module slot
func (r *GormMutationRepository) ClearOverrides(ctx context.Context, fitID, slot string) error {
	return r.db.WithContext(ctx).
		Delete(&MutationModel{}, "fit_id = ? AND slot = ?", fitID, slot).Error
}

// encodeOverrides serializes the override map with string keys, since JSON
// objects cannot carry numeric keys.
func encodeOverrides(overrides map[int64]float64) (string, error) {
	byName := make(map[string]float64, len(overrides))
	for id, v := range overrides {
		byName[strconv.FormatInt(id, 10)] = v
	}
	encoded, err := json.Marshal(byName)
	if err != nil {
		return "", fmt.Errorf("failed to marshal overrides: %w", err)
	}
	return string(encoded), nil
}

func decodeOverrides(encoded string) (map[int64]float64, error) {
	var byName map[string]float64
	if err := json.Unmarshal([]byte(encoded), &byName); err != nil {
		return nil, fmt.Errorf("corrupt override map: %w", err)
	}
	overrides := make(map[int64]float64, len(byName))
	for name, v := range byName {
		id, err := strconv.ParseInt(name, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt override key %q: %w", name, err)
		}
		overrides[id] = v
	}
	return overrides, nil
}
