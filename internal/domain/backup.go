package domain

// BackupVersion is the current export document version.
const BackupVersion = 1

// BackupDocument is the full-state export/import payload. Field names match
// the persisted key layout so old exports keep importing.
type BackupDocument struct {
	V               int                   `json:"v"`
	ExportedAt      string                `json:"exportedAt"` // RFC 3339
	Profile         Profile               `json:"profile"`
	BwLogs          []BodyweightEntry     `json:"bwLogs"`
	Attendance      []string              `json:"attendance"`
	ProteinMap      map[string]ProteinDay `json:"proteinMap"`
	Lifts           []LiftEntry           `json:"lifts"`
	Routines        []Routine             `json:"routines"`
	ActiveRoutineID string                `json:"activeRoutineId"`
	LastBackup      string                `json:"lastBackup,omitempty"`
	ActiveScreen    string                `json:"activeScreen,omitempty"`
}
