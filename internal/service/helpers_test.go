package service

import (
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/kv"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository/kvstore"
)

// testEnv wires every repository over a fresh in-memory store.
type testEnv struct {
	store   *kv.MemoryStore
	adapter *kv.Adapter

	profiles       repository.ProfileRepository
	routines       repository.RoutineRepository
	lifts          repository.LiftRepository
	bodyweight     repository.BodyweightRepository
	attendance     repository.AttendanceRepository
	protein        repository.ProteinRepository
	targets        repository.TargetRepository
	customExercise repository.CustomExerciseRepository
	state          repository.StateRepository
}

func newTestEnv() *testEnv {
	store := kv.NewMemoryStore()
	adapter := kv.NewAdapter(store, "")
	return &testEnv{
		store:          store,
		adapter:        adapter,
		profiles:       kvstore.NewProfileRepository(adapter),
		routines:       kvstore.NewRoutineRepository(adapter),
		lifts:          kvstore.NewLiftRepository(adapter),
		bodyweight:     kvstore.NewBodyweightRepository(adapter),
		attendance:     kvstore.NewAttendanceRepository(adapter),
		protein:        kvstore.NewProteinRepository(adapter),
		targets:        kvstore.NewTargetRepository(adapter),
		customExercise: kvstore.NewCustomExerciseRepository(adapter),
		state:          kvstore.NewStateRepository(adapter),
	}
}

func (e *testEnv) liftService() LiftService {
	return NewLiftService(e.lifts, e.targets)
}

func (e *testEnv) routineService() RoutineService {
	return NewRoutineService(e.routines)
}

func (e *testEnv) logService() LogService {
	return NewLogService(e.bodyweight, e.attendance, e.protein, e.profiles, e.routineService())
}

func (e *testEnv) metricsService() MetricsService {
	return NewMetricsService(e.profiles, e.routineService(), e.logService(), e.liftService())
}

func (e *testEnv) backupService() BackupService {
	return NewBackupService(e.profiles, e.routines, e.lifts, e.bodyweight, e.attendance, e.protein, e.state, nil)
}

// localDate builds a local-zone timestamp matching the ISO date helpers.
func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}
