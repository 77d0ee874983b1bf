package exercises_test

import (
	"testing"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/exercises"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, exercises.Normalize("cable crunch"), exercises.Normalize("Cable  Crunch "))
	assert.Equal(t, "goblet squat", exercises.Normalize("  Goblet\tSquat  "))
	assert.Equal(t, "", exercises.Normalize("   "))
}

func TestCanonical_Synonyms(t *testing.T) {
	cases := map[string]string{
		"cable crunches":                      "Cable Crunch",
		"Leg Extensions":                      "Leg Extension",
		"standing calf raise (machine)":       "Standing Calf Raise",
		"overhead dumbbell triceps extension": "Overhead Dumbbell Tricep Extension",
		"goblet squats":                       "Goblet Squat",
		"spin bike":                           "Stationary Bike",
	}
	for in, want := range cases {
		assert.Equal(t, want, exercises.Canonical(in), "input %q", in)
	}
}

func TestCanonical_Idempotent(t *testing.T) {
	inputs := []string{"cable crunches", "Goblet Squat", "Weird Custom Move", "  spin bike  "}
	for _, in := range inputs {
		once := exercises.Canonical(in)
		assert.Equal(t, once, exercises.Canonical(once), "input %q", in)
	}
}

func TestCanonical_UnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "Zercher Squat", exercises.Canonical("  Zercher Squat "))
	assert.Equal(t, "", exercises.Canonical("   "))
}

func TestClean(t *testing.T) {
	assert.Equal(t, "Cable Crunch", exercises.Clean("  cable   crunches "))
	assert.Equal(t, "My Custom Move", exercises.Clean("My   Custom  Move"))
}

func TestMerged(t *testing.T) {
	names := exercises.Merged([]string{"zercher squat", "Cable  Crunches", "Zercher Squat", ""})

	// custom name made it in once, canonical synonym did not duplicate
	count := 0
	for _, n := range names {
		if n == "zercher squat" || n == "Zercher Squat" {
			count++
		}
		assert.NotEqual(t, "Cable Crunches", n)
	}
	assert.Equal(t, 1, count)

	// sorted
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}
