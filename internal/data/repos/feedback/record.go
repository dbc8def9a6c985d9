package feedback

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

// RecordRepo is the append-only reflection log. No update or delete: a
// customer cannot retract a reflection.
type RecordRepo interface {
	Append(ctx context.Context, tx *gorm.DB, rec *types.FeedbackRecord) (*types.FeedbackRecord, error)
	ListByMood(ctx context.Context, tx *gorm.DB, mood types.Mood, limit int) ([]*types.FeedbackRecord, error)
	ListByMoodAndOutcome(ctx context.Context, tx *gorm.DB, mood types.Mood, outcome types.Outcome, limit int) ([]*types.FeedbackRecord, error)
}

type recordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecordRepo(db *gorm.DB, baseLog *logger.Logger) RecordRepo {
	return &recordRepo{db: db, log: baseLog.With("repo", "FeedbackRecordRepo")}
}

func (r *recordRepo) Append(ctx context.Context, tx *gorm.DB, rec *types.FeedbackRecord) (*types.FeedbackRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if err := t.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *recordRepo) ListByMood(ctx context.Context, tx *gorm.DB, mood types.Mood, limit int) ([]*types.FeedbackRecord, error) {
	return r.list(ctx, tx, mood, nil, limit)
}

func (r *recordRepo) ListByMoodAndOutcome(ctx context.Context, tx *gorm.DB, mood types.Mood, outcome types.Outcome, limit int) ([]*types.FeedbackRecord, error) {
	return r.list(ctx, tx, mood, &outcome, limit)
}

func (r *recordRepo) list(ctx context.Context, tx *gorm.DB, mood types.Mood, outcome *types.Outcome, limit int) ([]*types.FeedbackRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if limit <= 0 {
		limit = 500
	}
	if limit > 1000 {
		limit = 1000
	}
	q := t.WithContext(ctx).Where("mood = ?", mood)
	if outcome != nil {
		q = q.Where("outcome = ?", *outcome)
	}
	var out []*types.FeedbackRecord
	if err := q.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
