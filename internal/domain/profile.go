package domain

// Week start preferences. These are stored verbatim in the profile record.
const (
	WeekStartMonday = "mon"
	WeekStartSunday = "sun"
)

// DefaultProteinGoal is used when the profile has no (or a nonsense) goal.
const DefaultProteinGoal = 240

// Profile is the single user record. It is replaced wholesale on every save,
// shallow-merged with the previous record at the service layer.
type Profile struct {
	Name         string `json:"name"`
	Units        string `json:"units"` // always "lbs" for now
	ProteinGoal  int    `json:"proteinGoal"`
	WeekStart    string `json:"weekStart"` // "mon" or "sun"
	HideRestDays bool   `json:"hideRestDays"`
}

// DefaultProfile returns the record created on first load.
func DefaultProfile() Profile {
	return Profile{
		Units:       "lbs",
		ProteinGoal: DefaultProteinGoal,
		WeekStart:   WeekStartMonday,
	}
}

// Normalized coerces malformed fields back to safe defaults.
func (p Profile) Normalized() Profile {
	if p.Units == "" {
		p.Units = "lbs"
	}
	if p.ProteinGoal <= 0 {
		p.ProteinGoal = DefaultProteinGoal
	}
	if p.WeekStart != WeekStartSunday {
		p.WeekStart = WeekStartMonday
	}
	return p
}
