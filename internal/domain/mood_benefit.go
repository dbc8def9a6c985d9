package domain

import (
	"time"

	"github.com/google/uuid"
)

// MoodBenefit maps curated "why this helps" copy to a mood and either a
// specific item or a whole category. The presence of a matching row is what
// grants the mood-benefit scoring bonus; item-level rows win over
// category-level ones when both match.
type MoodBenefit struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Mood      Mood      `gorm:"column:mood;not null;index:idx_benefit_mood_item;index:idx_benefit_mood_category" json:"mood"`
	ItemID    *string   `gorm:"column:item_id;index:idx_benefit_mood_item" json:"item_id,omitempty"`
	Category  *Category `gorm:"column:category;index:idx_benefit_mood_category" json:"category,omitempty"`
	Text      string    `gorm:"column:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (MoodBenefit) TableName() string { return "mood_benefit" }
