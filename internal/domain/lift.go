package domain

// SetDetail is a single performed set.
type SetDetail struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// Valid reports whether the set counts toward a logged lift.
func (s SetDetail) Valid() bool {
	return s.Weight > 0 && s.Reps > 0
}

// LiftEntry is one logged workout for one exercise. TopWeight/TopReps always
// mirror the heaviest entry in SetDetails (first occurrence wins ties).
// IsPersonalRecord is computed once at insertion time and never rewritten;
// the query surface recomputes an effective flag when listing.
type LiftEntry struct {
	ID                     string      `json:"id"`
	Date                   string      `json:"date"` // YYYY-MM-DD, local calendar
	ExerciseName           string      `json:"exerciseName"`
	ExerciseNameNormalized string      `json:"exerciseNameNormalized"`
	SetCount               int         `json:"setCount"`
	TopReps                int         `json:"topReps"`
	TopWeight              float64     `json:"topWeight"`
	IsPersonalRecord       bool        `json:"isPersonalRecord"`
	SetDetails             []SetDetail `json:"setDetails"`
	RoutineID              string      `json:"routineId,omitempty"`
	RoutineName            string      `json:"routineName,omitempty"`
	DayKey                 string      `json:"dayKey,omitempty"`
}

// Volume is the total work of the entry: per-set weight*reps when set detail
// is present, otherwise topWeight*topReps*setCount.
func (e LiftEntry) Volume() float64 {
	if len(e.SetDetails) > 0 {
		var total float64
		for _, s := range e.SetDetails {
			total += s.Weight * float64(s.Reps)
		}
		return total
	}
	return e.TopWeight * float64(e.TopReps) * float64(e.SetCount)
}
