package domain

import (
	"time"

	"gorm.io/datatypes"
)

// MoodDefinition is the admin-editable row backing one mood. Rows are created
// at seed time, one per mood kind, and are deactivated rather than deleted so
// historical statistics keep their key.
type MoodDefinition struct {
	Mood                Mood           `gorm:"column:mood;primaryKey" json:"mood"`
	Emoji               string         `gorm:"column:emoji" json:"emoji"`
	Label               string         `gorm:"column:label;not null" json:"label"`
	Description         string         `gorm:"column:description" json:"description"`
	PreferredCategories datatypes.JSON `gorm:"type:jsonb;column:preferred_categories" json:"preferred_categories"`
	ExcludeCategories   datatypes.JSON `gorm:"type:jsonb;column:exclude_categories" json:"exclude_categories"`
	PriceMin            *float64       `gorm:"column:price_min" json:"price_min,omitempty"`
	PriceMax            *float64       `gorm:"column:price_max" json:"price_max,omitempty"`
	IsActive            bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt           time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null" json:"updated_at"`
}

func (MoodDefinition) TableName() string { return "mood_definition" }
