package mood

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

// ItemStatisticRepo tracks shown/ordered per (mood, item) pair, one upsert
// per item so concurrent exposure events never lose counts.
type ItemStatisticRepo interface {
	IncrementShown(ctx context.Context, tx *gorm.DB, mood types.Mood, itemIDs []string) error
	IncrementOrdered(ctx context.Context, tx *gorm.DB, mood types.Mood, itemIDs []string) error
	GetByMood(ctx context.Context, tx *gorm.DB, mood types.Mood) ([]*types.ItemMoodStatistic, error)
	Reset(ctx context.Context, tx *gorm.DB, mood types.Mood) error
	ResetAll(ctx context.Context, tx *gorm.DB) error
}

type itemStatisticRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemStatisticRepo(db *gorm.DB, baseLog *logger.Logger) ItemStatisticRepo {
	return &itemStatisticRepo{db: db, log: baseLog.With("repo", "ItemMoodStatisticRepo")}
}

func (r *itemStatisticRepo) increment(ctx context.Context, tx *gorm.DB, mood types.Mood, itemIDs []string, column string) error {
	t := tx
	if t == nil {
		t = r.db
	}
	for _, id := range itemIDs {
		if id == "" {
			continue
		}
		seed := &types.ItemMoodStatistic{Mood: mood, ItemID: id}
		if column == "shown" {
			seed.Shown = 1
		} else {
			seed.Ordered = 1
		}
		err := t.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "mood"}, {Name: "item_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					column:       gorm.Expr("item_mood_statistic."+column+" + 1"),
					"updated_at": time.Now().UTC(),
				}),
			}).
			Create(seed).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *itemStatisticRepo) IncrementShown(ctx context.Context, tx *gorm.DB, mood types.Mood, itemIDs []string) error {
	return r.increment(ctx, tx, mood, itemIDs, "shown")
}

func (r *itemStatisticRepo) IncrementOrdered(ctx context.Context, tx *gorm.DB, mood types.Mood, itemIDs []string) error {
	return r.increment(ctx, tx, mood, itemIDs, "ordered")
}

func (r *itemStatisticRepo) GetByMood(ctx context.Context, tx *gorm.DB, mood types.Mood) ([]*types.ItemMoodStatistic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.ItemMoodStatistic
	if err := t.WithContext(ctx).Where("mood = ?", mood).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *itemStatisticRepo) Reset(ctx context.Context, tx *gorm.DB, mood types.Mood) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("mood = ?", mood).
		Delete(&types.ItemMoodStatistic{}).Error
}

func (r *itemStatisticRepo) ResetAll(ctx context.Context, tx *gorm.DB) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("1 = 1").
		Delete(&types.ItemMoodStatistic{}).Error
}
