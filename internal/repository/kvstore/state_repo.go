package kvstore

import (
	"context"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/kv"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"
)

type stateRepo struct {
	kv *kv.Adapter
}

// NewStateRepository creates the KV-backed app-state repository.
func NewStateRepository(adapter *kv.Adapter) repository.StateRepository {
	return &stateRepo{kv: adapter}
}

func (r *stateRepo) loadString(ctx context.Context, key string) string {
	var s string
	r.kv.Load(ctx, key, &s)
	return s
}

func (r *stateRepo) ActiveScreen(ctx context.Context) string {
	return r.loadString(ctx, keyActiveScreen)
}

func (r *stateRepo) SetActiveScreen(ctx context.Context, screen string) error {
	return r.kv.Save(ctx, keyActiveScreen, screen)
}

func (r *stateRepo) OnboardingDone(ctx context.Context) bool {
	var done bool
	r.kv.Load(ctx, keyOnboardDone, &done)
	return done
}

func (r *stateRepo) SetOnboardingDone(ctx context.Context, done bool) error {
	return r.kv.Save(ctx, keyOnboardDone, done)
}

func (r *stateRepo) LastBackup(ctx context.Context) string {
	return r.loadString(ctx, keyLastBackup)
}

func (r *stateRepo) SetLastBackup(ctx context.Context, at string) error {
	return r.kv.Save(ctx, keyLastBackup, at)
}

func (r *stateRepo) AppVersion(ctx context.Context) string {
	return r.loadString(ctx, keyAppVersion)
}

func (r *stateRepo) SetAppVersion(ctx context.Context, version string) error {
	return r.kv.Save(ctx, keyAppVersion, version)
}

func (r *stateRepo) PinHash(ctx context.Context) string {
	return r.loadString(ctx, keyPinHash)
}

func (r *stateRepo) SetPinHash(ctx context.Context, hash string) error {
	return r.kv.Save(ctx, keyPinHash, hash)
}
