package domain

// Mood is the fixed enumeration of customer-selectable moods.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
	MoodTired    Mood = "tired"
	MoodExcited  Mood = "excited"
	MoodRelaxed  Mood = "relaxed"
)

var AllMoods = []Mood{
	MoodHappy,
	MoodSad,
	MoodStressed,
	MoodTired,
	MoodExcited,
	MoodRelaxed,
}

func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodStressed, MoodTired, MoodExcited, MoodRelaxed:
		return true
	default:
		return false
	}
}

// Category is the canonical menu category enumeration. The catalog and the
// mood definitions both speak in these identifiers; there is no string
// normalization anywhere downstream.
type Category string

const (
	CategoryPizza      Category = "pizza"
	CategoryBurger     Category = "burger"
	CategoryMainCourse Category = "main_course"
	CategoryAppetizer  Category = "appetizer"
	CategorySalad      Category = "salad"
	CategorySoup       Category = "soup"
	CategoryDessert    Category = "dessert"
	CategoryHotDrinks  Category = "hot_drinks"
	CategoryColdDrinks Category = "cold_drinks"
	CategorySmoothie   Category = "smoothie"
	CategoryValueMeal  Category = "value_meal"
)

var AllCategories = []Category{
	CategoryPizza,
	CategoryBurger,
	CategoryMainCourse,
	CategoryAppetizer,
	CategorySalad,
	CategorySoup,
	CategoryDessert,
	CategoryHotDrinks,
	CategoryColdDrinks,
	CategorySmoothie,
	CategoryValueMeal,
}

func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Outcome is the customer-reported post-order reflection result.
type Outcome string

const (
	OutcomeImproved Outcome = "improved"
	OutcomeSame     Outcome = "same"
	OutcomeWorse    Outcome = "worse"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeImproved, OutcomeSame, OutcomeWorse:
		return true
	default:
		return false
	}
}

// TimeBucket and ConditionBucket are the transient context signals resolved
// from the wall clock.
type TimeBucket string

const (
	TimeMorning   TimeBucket = "morning"
	TimeAfternoon TimeBucket = "afternoon"
	TimeEvening   TimeBucket = "evening"
	TimeNight     TimeBucket = "night"
)

type ConditionBucket string

const (
	ConditionHot    ConditionBucket = "hot"
	ConditionCold   ConditionBucket = "cold"
	ConditionNormal ConditionBucket = "normal"
)

// TimeContext is the situational signal pair resolved from the wall clock.
type TimeContext struct {
	Time      TimeBucket      `json:"time"`
	Condition ConditionBucket `json:"condition"`
}
