package mood

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

// StatisticRepo owns the per-mood aggregate counters. Every increment is a
// single upsert statement so concurrent callers for the same mood never lose
// updates and unrelated moods never serialize against each other.
type StatisticRepo interface {
	IncrementShown(ctx context.Context, tx *gorm.DB, mood types.Mood, n int64) error
	IncrementOrdered(ctx context.Context, tx *gorm.DB, mood types.Mood, n int64) error
	IncrementFeedback(ctx context.Context, tx *gorm.DB, mood types.Mood, outcome types.Outcome) error
	Get(ctx context.Context, tx *gorm.DB, mood types.Mood) (*types.MoodStatistic, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.MoodStatistic, error)
	Reset(ctx context.Context, tx *gorm.DB, mood types.Mood) error
	ResetAll(ctx context.Context, tx *gorm.DB) error
}

type statisticRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatisticRepo(db *gorm.DB, baseLog *logger.Logger) StatisticRepo {
	return &statisticRepo{db: db, log: baseLog.With("repo", "MoodStatisticRepo")}
}

func (r *statisticRepo) incrementColumn(ctx context.Context, tx *gorm.DB, mood types.Mood, column string, n int64, seed *types.MoodStatistic) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if n <= 0 {
		return nil
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "mood"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				column:       gorm.Expr(fmt.Sprintf("mood_statistic.%s + ?", column), n),
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(seed).Error
}

func (r *statisticRepo) IncrementShown(ctx context.Context, tx *gorm.DB, mood types.Mood, n int64) error {
	return r.incrementColumn(ctx, tx, mood, "total_shown", n, &types.MoodStatistic{Mood: mood, TotalShown: n})
}

func (r *statisticRepo) IncrementOrdered(ctx context.Context, tx *gorm.DB, mood types.Mood, n int64) error {
	return r.incrementColumn(ctx, tx, mood, "total_ordered", n, &types.MoodStatistic{Mood: mood, TotalOrdered: n})
}

func (r *statisticRepo) IncrementFeedback(ctx context.Context, tx *gorm.DB, mood types.Mood, outcome types.Outcome) error {
	t := tx
	if t == nil {
		t = r.db
	}
	seed := &types.MoodStatistic{Mood: mood, FeedbackCount: 1}
	var outcomeColumn string
	switch outcome {
	case types.OutcomeImproved:
		outcomeColumn = "improved_count"
		seed.ImprovedCount = 1
	case types.OutcomeSame:
		outcomeColumn = "same_count"
		seed.SameCount = 1
	case types.OutcomeWorse:
		outcomeColumn = "worse_count"
		seed.WorseCount = 1
	default:
		return fmt.Errorf("unknown outcome %q", outcome)
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "mood"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"feedback_count": gorm.Expr("mood_statistic.feedback_count + 1"),
				outcomeColumn:    gorm.Expr(fmt.Sprintf("mood_statistic.%s + 1", outcomeColumn)),
				"updated_at":     time.Now().UTC(),
			}),
		}).
		Create(seed).Error
}

func (r *statisticRepo) Get(ctx context.Context, tx *gorm.DB, mood types.Mood) (*types.MoodStatistic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var stat types.MoodStatistic
	if err := t.WithContext(ctx).Where("mood = ?", mood).First(&stat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No events yet for this mood: zeroed counters, not an error.
			return &types.MoodStatistic{Mood: mood}, nil
		}
		return nil, err
	}
	return &stat, nil
}

func (r *statisticRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.MoodStatistic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.MoodStatistic
	if err := t.WithContext(ctx).Order("mood ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

var zeroCounters = map[string]interface{}{
	"total_shown":    0,
	"total_ordered":  0,
	"feedback_count": 0,
	"improved_count": 0,
	"same_count":     0,
	"worse_count":    0,
}

func (r *statisticRepo) Reset(ctx context.Context, tx *gorm.DB, mood types.Mood) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.MoodStatistic{}).
		Where("mood = ?", mood).
		Updates(zeroCounters).Error
}

func (r *statisticRepo) ResetAll(ctx context.Context, tx *gorm.DB) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.MoodStatistic{}).
		Where("1 = 1").
		Updates(zeroCounters).Error
}
