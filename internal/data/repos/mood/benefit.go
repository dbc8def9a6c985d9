package mood

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

// BenefitRepo resolves curated mood-benefit copy by explicit (mood, item) or
// (mood, category) keys. This replaces the name-substring heuristic the
// feature originally shipped with.
type BenefitRepo interface {
	GetByMood(ctx context.Context, tx *gorm.DB, mood types.Mood) ([]*types.MoodBenefit, error)
	Upsert(ctx context.Context, tx *gorm.DB, benefits []*types.MoodBenefit) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type benefitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBenefitRepo(db *gorm.DB, baseLog *logger.Logger) BenefitRepo {
	return &benefitRepo{db: db, log: baseLog.With("repo", "MoodBenefitRepo")}
}

func (r *benefitRepo) GetByMood(ctx context.Context, tx *gorm.DB, mood types.Mood) ([]*types.MoodBenefit, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.MoodBenefit
	if err := t.WithContext(ctx).Where("mood = ?", mood).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *benefitRepo) Upsert(ctx context.Context, tx *gorm.DB, benefits []*types.MoodBenefit) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(benefits) == 0 {
		return nil
	}
	for _, b := range benefits {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"text":       gorm.Expr("excluded.text"),
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(&benefits).Error
}

func (r *benefitRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(ctx).Model(&types.MoodBenefit{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
