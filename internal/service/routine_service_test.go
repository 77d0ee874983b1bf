package service

import (
	"context"
	"testing"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/dates"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutines_SeedWhenEmpty(t *testing.T) {
	env := newTestEnv()
	svc := env.routineService()
	ctx := context.Background()

	routines := svc.List(ctx)
	require.Len(t, routines, 1)
	assert.Equal(t, domain.RoutineSourceSeed, routines[0].Source)
	assert.Len(t, routines[0].Days, 7)

	active := svc.Active(ctx)
	assert.Equal(t, routines[0].ID, active.ID)
	assert.Equal(t, 6, active.WeeklyTarget(), "default split trains six days")
}

func TestRoutines_CreateFromTemplateAndCustom(t *testing.T) {
	svc := newTestEnv().routineService()
	ctx := context.Background()

	fromTemplate, err := svc.Create(ctx, "My Split", "upper-lower")
	require.NoError(t, err)
	assert.Equal(t, "My Split", fromTemplate.Name)
	assert.Equal(t, domain.RoutineSourceTemplate, fromTemplate.Source)
	assert.Equal(t, 4, fromTemplate.WeeklyTarget())

	custom, err := svc.Create(ctx, "Blank", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoutineSourceCustom, custom.Source)
	for _, key := range dates.DayKeys {
		assert.NotNil(t, custom.Days[key].Exercises)
	}

	_, err = svc.Create(ctx, "Nope", "no-such-template")
	assert.ErrorIs(t, err, ErrUnknownTemplate)

	assert.Len(t, svc.List(ctx), 3) // seed + two created
}

func TestRoutines_DuplicateIsIndependent(t *testing.T) {
	svc := newTestEnv().routineService()
	ctx := context.Background()

	original := svc.Active(ctx)
	dup, err := svc.Duplicate(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original.Name+" (copy)", dup.Name)
	assert.NotEqual(t, original.ID, dup.ID)

	// Editing the copy must not leak into the original.
	_, err = svc.UpdateDay(ctx, dup.ID, "mon", domain.DayPlan{Label: "Changed", Exercises: []domain.ExercisePlan{}})
	require.NoError(t, err)

	reloaded, err := svc.Get(ctx, original.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Changed", reloaded.Days["mon"].Label)
}

func TestRoutines_CanonicalNameMigration(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	seeded := domain.Routine{
		ID:   "r1",
		Name: "Legacy",
		Days: map[string]domain.DayPlan{
			"mon": {Label: "Push", Exercises: []domain.ExercisePlan{
				{Name: "cable crunches", Sets: 3},
				{Name: "Cable Crunch", Sets: 3}, // duplicate after canonicalization
				{Name: "  Leg   extensions "},
			}},
		},
	}
	require.NoError(t, env.routines.SaveAll(ctx, []domain.Routine{seeded}))

	routines := env.routineService().List(ctx)
	require.Len(t, routines, 1)

	mon := routines[0].Days["mon"]
	require.Len(t, mon.Exercises, 2)
	assert.Equal(t, "Cable Crunch", mon.Exercises[0].Name)
	assert.Equal(t, "Leg Extension", mon.Exercises[1].Name)
}

func TestRoutines_DayKeyRepair(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	malformed := domain.Routine{
		Name: "Broken",
		Days: map[string]domain.DayPlan{
			"mon":     {Label: "Push"},
			"someday": {Label: "Bogus"},
		},
	}
	require.NoError(t, env.routines.SaveAll(ctx, []domain.Routine{malformed}))

	routines := env.routineService().List(ctx)
	require.Len(t, routines, 1)
	repaired := routines[0]

	assert.NotEmpty(t, repaired.ID, "missing ids are minted")
	assert.Len(t, repaired.Days, 7)
	_, hasBogus := repaired.Days["someday"]
	assert.False(t, hasBogus)
	for _, key := range dates.DayKeys {
		assert.NotNil(t, repaired.Days[key].Exercises)
	}
}

func TestRoutines_ActiveHealsStaleID(t *testing.T) {
	env := newTestEnv()
	svc := env.routineService()
	ctx := context.Background()

	svc.List(ctx) // seed
	require.NoError(t, env.routines.SetActiveID(ctx, "gone"))

	active := svc.Active(ctx)
	assert.NotEmpty(t, active.ID)
	assert.Equal(t, active.ID, env.routines.ActiveID(ctx), "stale id is healed in the store")
}

func TestRoutines_DeleteRules(t *testing.T) {
	env := newTestEnv()
	svc := env.routineService()
	ctx := context.Background()

	seedID := svc.Active(ctx).ID
	assert.ErrorIs(t, svc.Delete(ctx, seedID), ErrLastRoutine)

	second, err := svc.Create(ctx, "Second", "full-body")
	require.NoError(t, err)
	require.NoError(t, svc.SetActive(ctx, second.ID))

	// Deleting the active routine points the active id at the survivor.
	require.NoError(t, svc.Delete(ctx, second.ID))
	assert.Equal(t, seedID, svc.Active(ctx).ID)

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrRoutineNotFound)
}

func TestRoutines_RenameAndUpdateDayValidation(t *testing.T) {
	svc := newTestEnv().routineService()
	ctx := context.Background()

	id := svc.Active(ctx).ID

	_, err := svc.Rename(ctx, id, "")
	assert.ErrorIs(t, err, ErrRoutineValidation)

	renamed, err := svc.Rename(ctx, id, "Heavy Block")
	require.NoError(t, err)
	assert.Equal(t, "Heavy Block", renamed.Name)

	_, err = svc.UpdateDay(ctx, id, "funday", domain.DayPlan{})
	assert.ErrorIs(t, err, ErrUnknownDayKey)

	updated, err := svc.UpdateDay(ctx, id, "sun", domain.DayPlan{
		Label: "Arms",
		Exercises: []domain.ExercisePlan{
			{Name: "barbell curl", Sets: 3},
			{Name: "Barbell Curl", Sets: 4}, // dropped as duplicate
			{Name: "   "},                   // dropped as empty
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Days["sun"].Exercises, 1)
	assert.Equal(t, "barbell curl", updated.Days["sun"].Exercises[0].Name)
}
