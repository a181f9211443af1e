package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solrange/fitsim/internal/domain/fitting"
	"github.com/solrange/fitsim/internal/domain/shared"
)

// GormFitRepository implements fitting.FitRepository using GORM
type GormFitRepository struct {
	db *gorm.DB
}

// NewGormFitRepository creates a new GormFitRepository
func NewGormFitRepository(db *gorm.DB) *GormFitRepository {
	return &GormFitRepository{db: db}
}

// Save stores or replaces a fit snapshot
func (r *GormFitRepository) Save(ctx context.Context, fit *fitting.Fit) error {
	snapshot, err := json.Marshal(fit)
	if err != nil {
		return fmt.Errorf("failed to marshal fit snapshot: %w", err)
	}

	model := FitModel{
		ID:       fit.ID,
		Name:     fit.Name,
		Snapshot: string(snapshot),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "snapshot", "updated_at"}),
		}).
		Create(&model).Error
}

// FindByID loads a fit snapshot by id
func (r *GormFitRepository) FindByID(ctx context.Context, id string) (*fitting.Fit, error) {
	var model FitModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewFitNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query fit: %w", err)
	}

	var fit fitting.Fit
	if err := json.Unmarshal([]byte(model.Snapshot), &fit); err != nil {
		return nil, shared.NewInvalidFitDataError(fmt.Sprintf("corrupt fit snapshot %s: %v", id, err))
	}
	fit.ID = model.ID
	fit.Name = model.Name
	return &fit, nil
}

// List returns all stored fits
func (r *GormFitRepository) List(ctx context.Context) ([]*fitting.Fit, error) {
	var models []FitModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list fits: %w", err)
	}

	fits := make([]*fitting.Fit, 0, len(models))
	for _, model := range models {
		var fit fitting.Fit
		if err := json.Unmarshal([]byte(model.Snapshot), &fit); err != nil {
			return nil, shared.NewInvalidFitDataError(fmt.Sprintf("corrupt fit snapshot %s: %v", model.ID, err))
		}
		fit.ID = model.ID
		fit.Name = model.Name
		fits = append(fits, &fit)
	}
	return fits, nil
}
