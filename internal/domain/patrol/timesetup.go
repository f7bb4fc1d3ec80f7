package patrol

// TimeSetup describes when a patrol schedule recurs. Each axis carries its
// own mode; the mode decides which of the sibling selection fields are
// meaningful. Hour and minute select from two-digit wall-clock values, day
// picks either weekday names or day-of-month numbers, month picks month
// names or a between range.
type TimeSetup struct {
	HourMode   SelectionMode `json:"hour_mode"`
	MinuteMode SelectionMode `json:"minute_mode"`
	DayMode    SelectionMode `json:"day_mode"`
	MonthMode  SelectionMode `json:"month_mode"`

	SelectedHours    []string `json:"selected_hours"`
	SelectedMinutes  []string `json:"selected_minutes"`
	SelectedWeekdays []string `json:"selected_weekdays"`
	SelectedDays     []string `json:"selected_days"`
	SelectedMonths   []string `json:"selected_months"`

	BetweenMinuteStart string `json:"between_minute_start"`
	BetweenMinuteEnd   string `json:"between_minute_end"`
	BetweenMonthStart  string `json:"between_month_start"`
	BetweenMonthEnd    string `json:"between_month_end"`
}

type SelectionMode string

const (
	ModeSpecific SelectionMode = "specific"
	ModeBetween  SelectionMode = "between"
	ModeAll      SelectionMode = "all"
	ModeWeekdays SelectionMode = "weekdays"
)

var (
	HourModeValues   = []string{string(ModeSpecific), string(ModeBetween)}
	MinuteModeValues = []string{string(ModeSpecific), string(ModeBetween)}
	DayModeValues    = []string{string(ModeWeekdays), string(ModeSpecific)}
	MonthModeValues  = []string{string(ModeSpecific), string(ModeBetween), string(ModeAll)}
)

// DefaultTimeSetup returns the recurrence every new schedule starts with:
// daily at 12:00, no weekdays picked yet, every month.
func DefaultTimeSetup() TimeSetup {
	return TimeSetup{
		HourMode:           ModeSpecific,
		MinuteMode:         ModeSpecific,
		DayMode:            ModeWeekdays,
		MonthMode:          ModeAll,
		SelectedHours:      []string{"12"},
		SelectedMinutes:    []string{"00"},
		SelectedWeekdays:   []string{},
		SelectedDays:       []string{},
		SelectedMonths:     []string{},
		BetweenMinuteStart: "00",
		BetweenMinuteEnd:   "59",
		BetweenMonthStart:  "January",
		BetweenMonthEnd:    "December",
	}
}

// Validate applies the per-axis selection checks: a mode that narrows an
// axis must come with at least one selection (or both range bounds). Checks
// run in a fixed order and the first failing axis wins. Hour between ranges
// are intentionally not checked; the compiler does not implement them
// either.
func (t TimeSetup) Validate() error {
	if t.HourMode == ModeSpecific && len(t.SelectedHours) == 0 {
		return ValidationError{Message: "At least one hour must be selected when using specific hours"}
	}
	if t.MinuteMode == ModeSpecific && len(t.SelectedMinutes) == 0 {
		return ValidationError{Message: "At least one minute must be selected when using specific minutes"}
	}
	if t.MinuteMode == ModeBetween {
		if t.BetweenMinuteStart == "" || t.BetweenMinuteEnd == "" {
			return ValidationError{Message: "Both start and end minutes are required for between minute range"}
		}
	}
	if t.DayMode == ModeWeekdays && len(t.SelectedWeekdays) == 0 {
		return ValidationError{Message: "At least one weekday must be selected when using weekdays"}
	}
	if t.DayMode == ModeSpecific && len(t.SelectedDays) == 0 {
		return ValidationError{Message: "At least one day must be selected when using specific days"}
	}
	if t.MonthMode == ModeSpecific && len(t.SelectedMonths) == 0 {
		return ValidationError{Message: "At least one month must be selected when using specific months"}
	}
	if t.MonthMode == ModeBetween {
		if t.BetweenMonthStart == "" || t.BetweenMonthEnd == "" {
			return ValidationError{Message: "Both start and end months are required for between month range"}
		}
	}
	return nil
}

// Clone returns a deep copy; TimeSetup carries slices, and drafts are copied
// out of the store before submission runs on them.
func (t TimeSetup) Clone() TimeSetup {
	c := t
	c.SelectedHours = append([]string(nil), t.SelectedHours...)
	c.SelectedMinutes = append([]string(nil), t.SelectedMinutes...)
	c.SelectedWeekdays = append([]string(nil), t.SelectedWeekdays...)
	c.SelectedDays = append([]string(nil), t.SelectedDays...)
	c.SelectedMonths = append([]string(nil), t.SelectedMonths...)
	return c
}
