package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeedbackRecord is one customer reflection: how they felt after an order
// relative to the mood they selected before it. Append-only; a reflection is
// never updated or retracted.
type FeedbackRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID      string         `gorm:"column:order_id;not null;index" json:"order_id"`
	Mood         Mood           `gorm:"column:mood;not null;index" json:"mood"`
	Outcome      Outcome        `gorm:"column:outcome;not null" json:"outcome"`
	ItemsOrdered datatypes.JSON `gorm:"type:jsonb;column:items_ordered" json:"items_ordered"`
	CreatedAt    time.Time      `gorm:"not null;index" json:"created_at"`
}

func (FeedbackRecord) TableName() string { return "feedback_record" }
