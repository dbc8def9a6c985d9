package services

import (
	"time"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
)

// TimeContextService buckets the wall clock into the transient signals used
// for context bonuses. Pure; no state, no errors.
type TimeContextService interface {
	Resolve(now time.Time) types.TimeContext
}

type timeContextService struct{}

func NewTimeContextService() TimeContextService {
	return timeContextService{}
}

func (timeContextService) Resolve(now time.Time) types.TimeContext {
	return types.TimeContext{
		Time:      timeBucket(now.Hour()),
		Condition: conditionBucket(now.Month()),
	}
}

func timeBucket(hour int) types.TimeBucket {
	switch {
	case hour >= 5 && hour < 11:
		return types.TimeMorning
	case hour >= 11 && hour < 17:
		return types.TimeAfternoon
	case hour >= 17 && hour < 22:
		return types.TimeEvening
	default:
		return types.TimeNight
	}
}

func conditionBucket(month time.Month) types.ConditionBucket {
	switch month {
	case time.June, time.July, time.August:
		return types.ConditionHot
	case time.December, time.January, time.February:
		return types.ConditionCold
	default:
		return types.ConditionNormal
	}
}
