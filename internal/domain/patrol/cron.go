package patrol

import "strings"

// Weekday codes follow the platform's cron dialect: Sunday=1 .. Saturday=7.
var weekdayCodes = map[string]string{
	"Sunday":    "1",
	"Monday":    "2",
	"Tuesday":   "3",
	"Wednesday": "4",
	"Thursday":  "5",
	"Friday":    "6",
	"Saturday":  "7",
}

var monthNumbers = map[string]string{
	"January":   "1",
	"February":  "2",
	"March":     "3",
	"April":     "4",
	"May":       "5",
	"June":      "6",
	"July":      "7",
	"August":    "8",
	"September": "9",
	"October":   "10",
	"November":  "11",
	"December":  "12",
}

// CronExpression compiles the time setup into the platform's five-field
// scheduling expression: "minute hour day-of-month month day-of-week".
// Unconstrained fields stay "*" ("?" for the two day fields). Only one of
// day-of-month/day-of-week is ever active; whichever day mode applies forces
// the other field to "?". Between ranges are rendered from the bound values
// as authored, without zero-padding normalization. Hour between ranges are
// not implemented and compile to "*".
//
// The function is pure: no side effects, identical output for identical
// input.
func (t TimeSetup) CronExpression() string {
	minute := "*"
	hour := "*"
	dayOfMonth := "?"
	month := "*"
	dayOfWeek := "?"

	if t.MinuteMode == ModeSpecific && len(t.SelectedMinutes) > 0 {
		minute = strings.Join(t.SelectedMinutes, ",")
	} else if t.MinuteMode == ModeBetween {
		minute = t.BetweenMinuteStart + "-" + t.BetweenMinuteEnd
	}

	if t.HourMode == ModeSpecific && len(t.SelectedHours) > 0 {
		hour = strings.Join(t.SelectedHours, ",")
	}

	if t.DayMode == ModeWeekdays && len(t.SelectedWeekdays) > 0 {
		codes := make([]string, 0, len(t.SelectedWeekdays))
		for _, day := range t.SelectedWeekdays {
			codes = append(codes, weekdayCodes[day])
		}
		dayOfWeek = strings.Join(codes, ",")
		dayOfMonth = "?"
	} else if t.DayMode == ModeSpecific && len(t.SelectedDays) > 0 {
		dayOfMonth = strings.Join(t.SelectedDays, ",")
		dayOfWeek = "?"
	}

	if t.MonthMode == ModeSpecific && len(t.SelectedMonths) > 0 {
		numbers := make([]string, 0, len(t.SelectedMonths))
		for _, m := range t.SelectedMonths {
			numbers = append(numbers, monthNumbers[m])
		}
		month = strings.Join(numbers, ",")
	} else if t.MonthMode == ModeBetween {
		month = monthNumbers[t.BetweenMonthStart] + "-" + monthNumbers[t.BetweenMonthEnd]
	}

	return minute + " " + hour + " " + dayOfMonth + " " + month + " " + dayOfWeek
}

// CronFlags are the coarse per-axis on/off signals consumers use when they
// do not need the full expression.
type CronFlags struct {
	Minute       string
	MinuteValues string
	Hour         string
	HourValues   string
	Day          string
	Month        string
}

// Flags derives the on/off switches for each axis. Minute and hour are "on"
// only for a non-empty specific selection; day for either day mode with
// selections; month for any month mode that constrains or explicitly covers
// the whole year.
func (t TimeSetup) Flags() CronFlags {
	f := CronFlags{Minute: "off", Hour: "off", Day: "off", Month: "off"}

	if t.MinuteMode == ModeSpecific && len(t.SelectedMinutes) > 0 {
		f.Minute = "on"
		f.MinuteValues = strings.Join(t.SelectedMinutes, ",")
	}
	if t.HourMode == ModeSpecific && len(t.SelectedHours) > 0 {
		f.Hour = "on"
		f.HourValues = strings.Join(t.SelectedHours, ",")
	}
	if t.DayMode == ModeWeekdays && len(t.SelectedWeekdays) > 0 {
		f.Day = "on"
	} else if t.DayMode == ModeSpecific && len(t.SelectedDays) > 0 {
		f.Day = "on"
	}
	switch t.MonthMode {
	case ModeSpecific:
		if len(t.SelectedMonths) > 0 {
			f.Month = "on"
		}
	case ModeBetween, ModeAll:
		f.Month = "on"
	}
	return f
}
