// Package kvstore implements the repository interfaces over the key-value
// persistence adapter: one JSON document per logical key, under the
// versioned gym_* key namespace.
package kvstore

// Persisted key layout. The _v1 suffix versions each document independently;
// bumping a suffix is how a future breaking schema change would migrate.
const (
	keyProfile       = "gym_profile_v1"
	keyRoutines      = "gym_routines_v1"
	keyActiveRoutine = "gym_active_routine_id_v1"
	keyActiveScreen  = "gym_active_screen_v1"
	keyBodyweight    = "gym_bw_logs_v1"
	keyAttendance    = "gym_attendance_v1"
	keyProtein       = "gym_protein_v1"
	keyLifts         = "gym_lifts_v1"
	keyTargets       = "gym_targets_v1"
	keyCustomEx      = "gym_custom_ex_v1"
	keyAppVersion    = "gym_app_version_v1"
	keyLastBackup    = "gym_last_backup_v1"
	keyOnboardDone   = "gym_onboard_done_v1"
	keyPinHash       = "gym_pin_hash_v1"
)
