package kvstore

import (
	"context"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/dates"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/kv"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"

	"github.com/google/uuid"
)

type routineRepo struct {
	kv *kv.Adapter
}

// NewRoutineRepository creates the KV-backed routine repository.
func NewRoutineRepository(adapter *kv.Adapter) repository.RoutineRepository {
	return &routineRepo{kv: adapter}
}

// All hydrates the routine collection, repairing each routine so the 7-key
// invariant holds at this boundary: missing weekday keys become empty
// non-rest days, nil exercise lists become empty and missing ids are minted.
func (r *routineRepo) All(ctx context.Context) []domain.Routine {
	var routines []domain.Routine
	r.kv.Load(ctx, keyRoutines, &routines)

	out := routines[:0]
	for _, routine := range routines {
		out = append(out, Repair(routine))
	}
	return out
}

func (r *routineRepo) SaveAll(ctx context.Context, routines []domain.Routine) error {
	return r.kv.Save(ctx, keyRoutines, routines)
}

func (r *routineRepo) ActiveID(ctx context.Context) string {
	var id string
	r.kv.Load(ctx, keyActiveRoutine, &id)
	return id
}

func (r *routineRepo) SetActiveID(ctx context.Context, id string) error {
	return r.kv.Save(ctx, keyActiveRoutine, id)
}

// Repair coerces a single routine's malformed fields to safe defaults.
func Repair(routine domain.Routine) domain.Routine {
	if routine.ID == "" {
		routine.ID = uuid.NewString()
	}
	if routine.Name == "" {
		routine.Name = "Routine"
	}
	if routine.Days == nil {
		routine.Days = make(map[string]domain.DayPlan, len(dates.DayKeys))
	}
	for _, key := range dates.DayKeys {
		day := routine.Days[key]
		if day.Exercises == nil {
			day.Exercises = []domain.ExercisePlan{}
		}
		routine.Days[key] = day
	}
	// Drop any key that is not one of the seven weekdays.
	for key := range routine.Days {
		if !isDayKey(key) {
			delete(routine.Days, key)
		}
	}
	return routine
}

func isDayKey(key string) bool {
	for _, k := range dates.DayKeys {
		if k == key {
			return true
		}
	}
	return false
}
