package patrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTimeSetup(t *testing.T) {
	setup := DefaultTimeSetup()

	assert.Equal(t, ModeSpecific, setup.HourMode)
	assert.Equal(t, ModeSpecific, setup.MinuteMode)
	assert.Equal(t, ModeWeekdays, setup.DayMode)
	assert.Equal(t, ModeAll, setup.MonthMode)
	assert.Equal(t, []string{"12"}, setup.SelectedHours)
	assert.Equal(t, []string{"00"}, setup.SelectedMinutes)
	assert.Empty(t, setup.SelectedWeekdays)
	assert.Equal(t, "00", setup.BetweenMinuteStart)
	assert.Equal(t, "59", setup.BetweenMinuteEnd)
	assert.Equal(t, "January", setup.BetweenMonthStart)
	assert.Equal(t, "December", setup.BetweenMonthEnd)
}

func TestTimeSetupValidateMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TimeSetup)
		wantErr string
	}{
		{
			name:    "specific hours empty",
			mutate:  func(s *TimeSetup) { s.SelectedHours = nil },
			wantErr: "At least one hour must be selected when using specific hours",
		},
		{
			name:    "specific minutes empty",
			mutate:  func(s *TimeSetup) { s.SelectedMinutes = nil },
			wantErr: "At least one minute must be selected when using specific minutes",
		},
		{
			name: "between minutes missing bound",
			mutate: func(s *TimeSetup) {
				s.MinuteMode = ModeBetween
				s.BetweenMinuteEnd = ""
			},
			wantErr: "Both start and end minutes are required for between minute range",
		},
		{
			name:    "weekdays empty",
			mutate:  func(s *TimeSetup) {},
			wantErr: "At least one weekday must be selected when using weekdays",
		},
		{
			name: "specific days empty",
			mutate: func(s *TimeSetup) {
				s.DayMode = ModeSpecific
			},
			wantErr: "At least one day must be selected when using specific days",
		},
		{
			name: "specific months empty",
			mutate: func(s *TimeSetup) {
				s.SelectedWeekdays = []string{"Monday"}
				s.MonthMode = ModeSpecific
			},
			wantErr: "At least one month must be selected when using specific months",
		},
		{
			name: "between months missing bound",
			mutate: func(s *TimeSetup) {
				s.SelectedWeekdays = []string{"Monday"}
				s.MonthMode = ModeBetween
				s.BetweenMonthStart = ""
			},
			wantErr: "Both start and end months are required for between month range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := DefaultTimeSetup()
			tt.mutate(&setup)

			err := setup.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())

			var vErr ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestTimeSetupValidateFirstFailureWins(t *testing.T) {
	setup := DefaultTimeSetup()
	setup.SelectedHours = nil
	setup.SelectedMinutes = nil

	err := setup.Validate()
	require.Error(t, err)
	assert.Equal(t, "At least one hour must be selected when using specific hours", err.Error())
}

func TestTimeSetupValidateAcceptsCompleteSetup(t *testing.T) {
	setup := DefaultTimeSetup()
	setup.SelectedWeekdays = []string{"Monday", "Friday"}

	assert.NoError(t, setup.Validate())
}

func TestTimeSetupValidateHourBetweenNotChecked(t *testing.T) {
	setup := DefaultTimeSetup()
	setup.SelectedWeekdays = []string{"Monday"}
	setup.HourMode = ModeBetween
	setup.SelectedHours = nil

	// Hour between ranges carry no bound check; nothing to validate.
	assert.NoError(t, setup.Validate())
}

func TestTimeSetupCloneIsIndependent(t *testing.T) {
	original := DefaultTimeSetup()
	original.SelectedWeekdays = []string{"Monday"}

	clone := original.Clone()
	clone.SelectedWeekdays[0] = "Tuesday"
	clone.SelectedHours[0] = "23"

	assert.Equal(t, []string{"Monday"}, original.SelectedWeekdays)
	assert.Equal(t, []string{"12"}, original.SelectedHours)
}
