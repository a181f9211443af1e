package persistence

import (
	"time"
)

// FitModel represents the fits table. The resolved snapshot is stored
// verbatim as JSON text: the engine never re-derives game rules from it.
type FitModel struct {
	ID        string    `gorm:"column:id;primaryKey;not null"`
	Name      string    `gorm:"column:name;not null"`
	Snapshot  string    `gorm:"column:snapshot;type:text;not null"` // resolved fit JSON
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (FitModel) TableName() string {
	return "fits"
}

// ItemTypeModel represents the item_types table, holding the per-type
// damage attributes of bomb items referenced by fighter squadrons.
type ItemTypeModel struct {
	TypeID          int64   `gorm:"column:type_id;primaryKey"`
	Name            string  `gorm:"column:name"`
	EMDamage        float64 `gorm:"column:em_damage;not null;default:0"`
	ThermalDamage   float64 `gorm:"column:thermal_damage;not null;default:0"`
	KineticDamage   float64 `gorm:"column:kinetic_damage;not null;default:0"`
	ExplosiveDamage float64 `gorm:"column:explosive_damage;not null;default:0"`
}

func (ItemTypeModel) TableName() string {
	return "item_types"
}

// MutationModel represents the mutations table: the applied override map of
// a single module slot. Staged mutations are never written here.
type MutationModel struct {
	FitID         string    `gorm:"column:fit_id;primaryKey;not null"`
	Slot          string    `gorm:"column:slot;primaryKey;not null"`
	MutaplasmidID int64     `gorm:"column:mutaplasmid_id;not null"`
	Overrides     string    `gorm:"column:overrides;type:text;not null"` // attribute id → multiplier JSON
	UpdatedAt     time.Time `gorm:"column:updated_at;not null"`
}

func (MutationModel) TableName() string {
	return "mutations"
}
