package domain

import "time"

// ItemMoodStatistic tracks shown/ordered per (mood, item) pair. It feeds the
// per-item order-rate scoring factor; items with no row simply get no bonus.
type ItemMoodStatistic struct {
	Mood      Mood      `gorm:"column:mood;primaryKey" json:"mood"`
	ItemID    string    `gorm:"column:item_id;primaryKey" json:"item_id"`
	Shown     int64     `gorm:"column:shown;not null;default:0" json:"shown"`
	Ordered   int64     `gorm:"column:ordered;not null;default:0" json:"ordered"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ItemMoodStatistic) TableName() string { return "item_mood_statistic" }
