package feedback

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

var ErrConfigNotFound = errors.New("feedback config row missing")

// ConfigRepo owns the singleton FeedbackConfig row. Replace writes the whole
// row in one statement guarded by the current version, so a concurrent reader
// sees either the old or the new weight set and never a mix.
type ConfigRepo interface {
	Get(ctx context.Context, tx *gorm.DB) (*types.FeedbackConfig, error)
	Create(ctx context.Context, tx *gorm.DB, cfg *types.FeedbackConfig) error
	Replace(ctx context.Context, tx *gorm.DB, cfg *types.FeedbackConfig) error
}

type configRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConfigRepo(db *gorm.DB, baseLog *logger.Logger) ConfigRepo {
	return &configRepo{db: db, log: baseLog.With("repo", "FeedbackConfigRepo")}
}

func (r *configRepo) Get(ctx context.Context, tx *gorm.DB) (*types.FeedbackConfig, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var cfg types.FeedbackConfig
	if err := t.WithContext(ctx).Where("id = ?", types.FeedbackConfigID).First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *configRepo) Create(ctx context.Context, tx *gorm.DB, cfg *types.FeedbackConfig) error {
	t := tx
	if t == nil {
		t = r.db
	}
	cfg.ID = types.FeedbackConfigID
	return t.WithContext(ctx).Create(cfg).Error
}

func (r *configRepo) Replace(ctx context.Context, tx *gorm.DB, cfg *types.FeedbackConfig) error {
	t := tx
	if t == nil {
		t = r.db
	}
	prev := cfg.Version
	cfg.ID = types.FeedbackConfigID
	cfg.Version = prev + 1
	res := t.WithContext(ctx).
		Model(&types.FeedbackConfig{}).
		Where("id = ? AND version = ?", types.FeedbackConfigID, prev).
		Select("*").
		Omit("id", "created_at").
		Updates(cfg)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
