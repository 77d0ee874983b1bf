package service

import (
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"

	"github.com/google/uuid"
)

// TemplateInfo describes a selectable routine template.
type TemplateInfo struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	TrainingDays int    `json:"trainingDays"`
}

// DefaultTemplateKey seeds the collection when it is empty or invalid.
const DefaultTemplateKey = "ppl"

type routineTemplate struct {
	info  TemplateInfo
	build func() map[string]domain.DayPlan
}

// Selecting a template always builds a fresh copy with a new id, so the
// template sources are never mutated by later edits.
var routineTemplates = []routineTemplate{
	{
		info:  TemplateInfo{Key: "ppl", Name: "Push / Pull / Legs (6-day)", TrainingDays: 6},
		build: pushPullLegsDays,
	},
	{
		info:  TemplateInfo{Key: "upper-lower", Name: "Upper / Lower (4-day)", TrainingDays: 4},
		build: upperLowerDays,
	},
	{
		info:  TemplateInfo{Key: "full-body", Name: "Full Body (3-day)", TrainingDays: 3},
		build: fullBodyDays,
	},
	{
		info:  TemplateInfo{Key: "bro-split", Name: "Body Part Split (5-day)", TrainingDays: 5},
		build: broSplitDays,
	},
}

func templateByKey(key string) (routineTemplate, bool) {
	for _, t := range routineTemplates {
		if t.info.Key == key {
			return t, true
		}
	}
	return routineTemplate{}, false
}

func buildFromTemplate(name string, t routineTemplate, source string) domain.Routine {
	if name == "" {
		name = t.info.Name
	}
	return domain.Routine{
		ID:     uuid.NewString(),
		Name:   name,
		Source: source,
		Days:   t.build(),
	}
}

func ep(name string, sets int, reps string) domain.ExercisePlan {
	return domain.ExercisePlan{Name: name, Sets: sets, Reps: reps}
}

func trainDay(label string, ex ...domain.ExercisePlan) domain.DayPlan {
	return domain.DayPlan{Label: label, Exercises: ex}
}

func restDay() domain.DayPlan {
	return domain.DayPlan{Label: "Rest", Rest: true, Exercises: []domain.ExercisePlan{}}
}

func pushPullLegsDays() map[string]domain.DayPlan {
	push := func() domain.DayPlan {
		return trainDay("Push",
			ep("Barbell Bench Press", 4, "5-8"),
			ep("Overhead Press", 3, "8-10"),
			ep("Incline Dumbbell Press", 3, "8-12"),
			ep("Lateral Raise", 3, "12-15"),
			ep("Tricep Pushdown", 3, "10-12"),
		)
	}
	pull := func() domain.DayPlan {
		return trainDay("Pull",
			ep("Deadlift", 3, "5"),
			ep("Barbell Row", 4, "6-10"),
			ep("Lat Pulldown", 3, "8-12"),
			ep("Face Pull", 3, "12-15"),
			ep("Barbell Curl", 3, "10-12"),
		)
	}
	legs := func() domain.DayPlan {
		return trainDay("Legs",
			ep("Back Squat", 4, "5-8"),
			ep("Romanian Deadlift", 3, "8-10"),
			ep("Leg Press", 3, "10-12"),
			ep("Leg Curl", 3, "10-12"),
			ep("Standing Calf Raise", 4, "12-15"),
		)
	}
	return map[string]domain.DayPlan{
		"mon": push(), "tue": pull(), "wed": legs(),
		"thu": push(), "fri": pull(), "sat": legs(),
		"sun": restDay(),
	}
}

func upperLowerDays() map[string]domain.DayPlan {
	upper := func() domain.DayPlan {
		return trainDay("Upper",
			ep("Barbell Bench Press", 4, "5-8"),
			ep("Barbell Row", 4, "6-10"),
			ep("Overhead Press", 3, "8-10"),
			ep("Lat Pulldown", 3, "8-12"),
			ep("Barbell Curl", 2, "10-12"),
		)
	}
	lower := func() domain.DayPlan {
		return trainDay("Lower",
			ep("Back Squat", 4, "5-8"),
			ep("Romanian Deadlift", 3, "8-10"),
			ep("Leg Extension", 3, "10-12"),
			ep("Leg Curl", 3, "10-12"),
			ep("Standing Calf Raise", 4, "12-15"),
		)
	}
	return map[string]domain.DayPlan{
		"mon": upper(), "tue": lower(), "wed": restDay(),
		"thu": upper(), "fri": lower(), "sat": restDay(),
		"sun": restDay(),
	}
}

func fullBodyDays() map[string]domain.DayPlan {
	full := func() domain.DayPlan {
		return trainDay("Full Body",
			ep("Back Squat", 3, "5-8"),
			ep("Barbell Bench Press", 3, "5-8"),
			ep("Barbell Row", 3, "6-10"),
			ep("Overhead Press", 2, "8-10"),
			ep("Cable Crunch", 3, "12-15"),
		)
	}
	return map[string]domain.DayPlan{
		"mon": full(), "tue": restDay(), "wed": full(),
		"thu": restDay(), "fri": full(), "sat": restDay(),
		"sun": restDay(),
	}
}

func broSplitDays() map[string]domain.DayPlan {
	return map[string]domain.DayPlan{
		"mon": trainDay("Chest",
			ep("Barbell Bench Press", 4, "6-10"),
			ep("Incline Dumbbell Press", 3, "8-12"),
			ep("Dip", 3, "8-12"),
		),
		"tue": trainDay("Back",
			ep("Deadlift", 3, "5"),
			ep("Lat Pulldown", 4, "8-12"),
			ep("Seated Cable Row", 3, "8-12"),
		),
		"wed": trainDay("Shoulders",
			ep("Overhead Press", 4, "6-10"),
			ep("Lateral Raise", 4, "12-15"),
			ep("Face Pull", 3, "12-15"),
		),
		"thu": trainDay("Arms",
			ep("Barbell Curl", 4, "8-12"),
			ep("Tricep Pushdown", 4, "8-12"),
			ep("Hammer Curl", 3, "10-12"),
		),
		"fri": trainDay("Legs",
			ep("Back Squat", 4, "5-8"),
			ep("Leg Press", 3, "10-12"),
			ep("Leg Curl", 3, "10-12"),
			ep("Standing Calf Raise", 4, "12-15"),
		),
		"sat": restDay(),
		"sun": restDay(),
	}
}
