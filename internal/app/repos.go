package app

import (
	"gorm.io/gorm"

	feedbackrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/feedback"
	moodrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/mood"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

type Repos struct {
	Definitions    moodrepos.DefinitionRepo
	Statistics     moodrepos.StatisticRepo
	ItemStatistics moodrepos.ItemStatisticRepo
	Benefits       moodrepos.BenefitRepo
	Config         feedbackrepos.ConfigRepo
	Records        feedbackrepos.RecordRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Definitions:    moodrepos.NewDefinitionRepo(db, log),
		Statistics:     moodrepos.NewStatisticRepo(db, log),
		ItemStatistics: moodrepos.NewItemStatisticRepo(db, log),
		Benefits:       moodrepos.NewBenefitRepo(db, log),
		Config:         feedbackrepos.NewConfigRepo(db, log),
		Records:        feedbackrepos.NewRecordRepo(db, log),
	}
}
