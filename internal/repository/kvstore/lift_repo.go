package kvstore

import (
	"context"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/exercises"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/kv"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"
)

type liftRepo struct {
	kv *kv.Adapter
}

// NewLiftRepository creates the KV-backed lift log repository.
func NewLiftRepository(adapter *kv.Adapter) repository.LiftRepository {
	return &liftRepo{kv: adapter}
}

func (r *liftRepo) All(ctx context.Context) []domain.LiftEntry {
	var lifts []domain.LiftEntry
	r.kv.Load(ctx, keyLifts, &lifts)

	// Backfill the normalized lookup key for entries written before it
	// existed (or imported from elsewhere).
	for i := range lifts {
		if lifts[i].ExerciseNameNormalized == "" {
			lifts[i].ExerciseNameNormalized = exercises.Normalize(lifts[i].ExerciseName)
		}
	}
	return lifts
}

func (r *liftRepo) SaveAll(ctx context.Context, lifts []domain.LiftEntry) error {
	return r.kv.Save(ctx, keyLifts, lifts)
}
