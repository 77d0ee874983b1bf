package domain

// Routine sources, recorded for provenance when a routine is created.
const (
	RoutineSourceTemplate  = "template"
	RoutineSourceCustom    = "custom"
	RoutineSourceDuplicate = "duplicate"
	RoutineSourceImport    = "import"
	RoutineSourceSeed      = "seed"
)

// ExercisePlan is one scheduled exercise within a day plan.
// Reps is free text on purpose ("8-10", "AMRAP", "5/3/1").
type ExercisePlan struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Notes string `json:"notes,omitempty"`
}

// DayPlan is one weekday's entry within a routine. Exercise order is
// meaningful: it drives both display order and the stalled-lift scan.
type DayPlan struct {
	Label     string         `json:"label"`
	Rest      bool           `json:"rest"`
	Exercises []ExercisePlan `json:"exercises"`
}

// Routine is a named 7-day workout template. Days always contains all seven
// weekday keys ("mon".."sun"); missing keys are synthesized on load.
type Routine struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Source string             `json:"source,omitempty"`
	Days   map[string]DayPlan `json:"days"`
}

// WeeklyTarget is the number of non-rest days, floored at 1 so downstream
// ratio math never divides by zero.
func (r Routine) WeeklyTarget() int {
	target := 0
	for _, day := range r.Days {
		if !day.Rest {
			target++
		}
	}
	if target < 1 {
		target = 1
	}
	return target
}
