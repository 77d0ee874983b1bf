// Package exercises owns exercise naming: normalization (lookup keys),
// canonicalization (display form via the synonym table) and the merged
// autocomplete name space of built-in plus user-added exercises.
//
// Normalize and Canonical are deliberately two distinct functions. The
// normalized form is a comparison key and is never displayed; the canonical
// form is the single preferred display string for an exercise.
package exercises

import (
	"sort"
	"strings"
)

// synonyms maps normalized variants to the one canonical display label.
var synonyms = map[string]string{
	"cable crunch":   "Cable Crunch",
	"cable crunches": "Cable Crunch",

	"leg extension":  "Leg Extension",
	"leg extensions": "Leg Extension",

	"standing calf raise":           "Standing Calf Raise",
	"standing calf raise (machine)": "Standing Calf Raise",

	"overhead dumbbell tricep extension":  "Overhead Dumbbell Tricep Extension",
	"overhead dumbbell triceps extension": "Overhead Dumbbell Tricep Extension",

	"goblet squat":  "Goblet Squat",
	"goblet squats": "Goblet Squat",

	"spin bike":       "Stationary Bike",
	"stationary bike": "Stationary Bike",
}

// Normalize lowercases, collapses internal whitespace runs to single spaces
// and trims. The result is used strictly as a lookup key.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Canonical resolves a name to its preferred display form via the synonym
// table, or returns the trimmed input unchanged when no synonym matches.
// Idempotent: Canonical(Canonical(x)) == Canonical(x).
func Canonical(s string) string {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return ""
	}
	if display, ok := synonyms[Normalize(raw)]; ok {
		return display
	}
	return raw
}

// Clean collapses whitespace and canonicalizes. This is the form persisted
// on routines, lift entries and the custom list.
func Clean(s string) string {
	return Canonical(strings.Join(strings.Fields(s), " "))
}

// Catalog is the built-in exercise name space offered for autocomplete.
var Catalog = []string{
	"Barbell Bench Press",
	"Incline Dumbbell Press",
	"Overhead Press",
	"Lateral Raise",
	"Tricep Pushdown",
	"Overhead Dumbbell Tricep Extension",
	"Deadlift",
	"Barbell Row",
	"Lat Pulldown",
	"Seated Cable Row",
	"Face Pull",
	"Barbell Curl",
	"Hammer Curl",
	"Back Squat",
	"Goblet Squat",
	"Romanian Deadlift",
	"Leg Press",
	"Leg Extension",
	"Leg Curl",
	"Standing Calf Raise",
	"Cable Crunch",
	"Plank",
	"Pull Up",
	"Dip",
	"Stationary Bike",
}

// Merged combines the built-in catalog with user-added names, de-duplicated
// by normalized form (first occurrence's display form wins) and sorted
// lexicographically.
func Merged(custom []string) []string {
	seen := make(map[string]struct{}, len(Catalog)+len(custom))
	var out []string
	add := func(name string) {
		clean := Clean(name)
		if clean == "" {
			return
		}
		key := Normalize(clean)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, clean)
	}
	for _, name := range Catalog {
		add(name)
	}
	for _, name := range custom {
		add(name)
	}
	sort.Strings(out)
	return out
}
