package service

import (
	"context"
	"testing"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestProfile_DefaultsAndMerge(t *testing.T) {
	env := newTestEnv()
	svc := NewProfileService(env.profiles, env.state)
	ctx := context.Background()

	p := svc.Get(ctx)
	assert.Equal(t, domain.DefaultProteinGoal, p.ProteinGoal)
	assert.Equal(t, domain.WeekStartMonday, p.WeekStart)

	updated, err := svc.Update(ctx, ProfileUpdate{Name: strPtr("Jordan"), ProteinGoal: intPtr(200)})
	require.NoError(t, err)
	assert.Equal(t, "Jordan", updated.Name)
	assert.Equal(t, 200, updated.ProteinGoal)

	// Absent fields keep their values.
	updated, err = svc.Update(ctx, ProfileUpdate{HideRestDays: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "Jordan", updated.Name)
	assert.Equal(t, 200, updated.ProteinGoal)
	assert.True(t, updated.HideRestDays)

	_, err = svc.Update(ctx, ProfileUpdate{ProteinGoal: intPtr(0)})
	assert.ErrorIs(t, err, ErrProfileValidation)
	_, err = svc.Update(ctx, ProfileUpdate{WeekStart: strPtr("wednesday")})
	assert.ErrorIs(t, err, ErrProfileValidation)
}

func TestProfile_AppState(t *testing.T) {
	env := newTestEnv()
	svc := NewProfileService(env.profiles, env.state)
	ctx := context.Background()

	state := svc.State(ctx)
	assert.False(t, state.OnboardingDone)
	assert.Empty(t, state.ActiveScreen)

	require.NoError(t, svc.SetActiveScreen(ctx, "lifts"))
	require.NoError(t, svc.CompleteOnboarding(ctx))

	state = svc.State(ctx)
	assert.Equal(t, "lifts", state.ActiveScreen)
	assert.True(t, state.OnboardingDone)
}
