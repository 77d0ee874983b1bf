package kvstore

import (
	"context"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/kv"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"
)

type profileRepo struct {
	kv *kv.Adapter
}

// NewProfileRepository creates the KV-backed profile repository.
func NewProfileRepository(adapter *kv.Adapter) repository.ProfileRepository {
	return &profileRepo{kv: adapter}
}

func (r *profileRepo) Get(ctx context.Context) domain.Profile {
	p := domain.DefaultProfile()
	r.kv.Load(ctx, keyProfile, &p)
	return p.Normalized()
}

func (r *profileRepo) Save(ctx context.Context, p domain.Profile) error {
	return r.kv.Save(ctx, keyProfile, p.Normalized())
}
