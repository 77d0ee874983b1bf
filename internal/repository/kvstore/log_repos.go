package kvstore

import (
	"context"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/kv"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"
)

type bodyweightRepo struct {
	kv *kv.Adapter
}

// NewBodyweightRepository creates the KV-backed bodyweight repository.
func NewBodyweightRepository(adapter *kv.Adapter) repository.BodyweightRepository {
	return &bodyweightRepo{kv: adapter}
}

func (r *bodyweightRepo) All(ctx context.Context) []domain.BodyweightEntry {
	var entries []domain.BodyweightEntry
	r.kv.Load(ctx, keyBodyweight, &entries)
	return entries
}

func (r *bodyweightRepo) SaveAll(ctx context.Context, entries []domain.BodyweightEntry) error {
	return r.kv.Save(ctx, keyBodyweight, entries)
}

type attendanceRepo struct {
	kv *kv.Adapter
}

// NewAttendanceRepository creates the KV-backed attendance repository.
func NewAttendanceRepository(adapter *kv.Adapter) repository.AttendanceRepository {
	return &attendanceRepo{kv: adapter}
}

func (r *attendanceRepo) All(ctx context.Context) []string {
	var attended []string
	r.kv.Load(ctx, keyAttendance, &attended)
	return attended
}

func (r *attendanceRepo) SaveAll(ctx context.Context, attended []string) error {
	return r.kv.Save(ctx, keyAttendance, attended)
}

type proteinRepo struct {
	kv *kv.Adapter
}

// NewProteinRepository creates the KV-backed protein repository.
func NewProteinRepository(adapter *kv.Adapter) repository.ProteinRepository {
	return &proteinRepo{kv: adapter}
}

func (r *proteinRepo) Map(ctx context.Context) map[string]domain.ProteinDay {
	m := make(map[string]domain.ProteinDay)
	r.kv.Load(ctx, keyProtein, &m)
	if m == nil {
		m = make(map[string]domain.ProteinDay)
	}
	return m
}

func (r *proteinRepo) SaveMap(ctx context.Context, m map[string]domain.ProteinDay) error {
	return r.kv.Save(ctx, keyProtein, m)
}

type targetRepo struct {
	kv *kv.Adapter
}

// NewTargetRepository creates the KV-backed exercise target repository.
func NewTargetRepository(adapter *kv.Adapter) repository.TargetRepository {
	return &targetRepo{kv: adapter}
}

func (r *targetRepo) Map(ctx context.Context) map[string]float64 {
	m := make(map[string]float64)
	r.kv.Load(ctx, keyTargets, &m)
	if m == nil {
		m = make(map[string]float64)
	}
	return m
}

func (r *targetRepo) SaveMap(ctx context.Context, m map[string]float64) error {
	return r.kv.Save(ctx, keyTargets, m)
}

type customExerciseRepo struct {
	kv *kv.Adapter
}

// NewCustomExerciseRepository creates the KV-backed custom exercise list
// repository.
func NewCustomExerciseRepository(adapter *kv.Adapter) repository.CustomExerciseRepository {
	return &customExerciseRepo{kv: adapter}
}

func (r *customExerciseRepo) All(ctx context.Context) []string {
	var names []string
	r.kv.Load(ctx, keyCustomEx, &names)
	return names
}

func (r *customExerciseRepo) SaveAll(ctx context.Context, names []string) error {
	return r.kv.Save(ctx, keyCustomEx, names)
}
