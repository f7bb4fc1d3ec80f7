package patrol

import (
	"strings"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/location"
)

// Draft is one in-progress patrolling definition. Drafts live only in
// memory: a successful submission produces a one-shot payload and discards
// the draft.
type Draft struct {
	ID                 string
	Name               string
	Description        string
	StartDate          string // YYYY-MM-DD
	EndDate            string // YYYY-MM-DD
	GracePeriodMinutes string // kept as authored; parsed during validation

	ChecklistID *int64
	Questions   []Question
	Schedules   []Schedule
	Checkpoints []Checkpoint
}

// Question is one checklist row of the draft. Options are derived from the
// comma-separated OptionsText whenever the input type is multiple choice.
type Question struct {
	ID          string
	Task        string
	InputType   string
	Mandatory   bool
	Options     []string
	OptionsText string
}

const (
	InputTypeYesNo          = "yes_no"
	InputTypeMultipleChoice = "multiple_choice"
	InputTypeRating         = "rating"
	InputTypeTextInput      = "text_input"
	InputTypeDescription    = "description"
	InputTypeEmoji          = "emoji"
)

var QuestionInputTypes = []string{
	InputTypeYesNo,
	InputTypeMultipleChoice,
	InputTypeRating,
	InputTypeTextInput,
	InputTypeDescription,
	InputTypeEmoji,
}

// ParseOptions splits comma-separated options text, trimming blanks.
func ParseOptions(optionsText string) []string {
	var options []string
	for _, part := range strings.Split(optionsText, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}

// Schedule pairs an assignee and supervisor with one TimeSetup. ScheduleID
// is the stable cross-reference key: generated once at creation, never
// regenerated, and the only identifier checkpoints may point at. The row ID
// exists for list addressing only, so reordering or deleting rows cannot
// corrupt references.
type Schedule struct {
	ID         string
	Start      string
	End        string
	Assignee   string // user id as authored by the operator
	Supervisor string // user id as authored by the operator
	ScheduleID int64
	TimeSetup  TimeSetup
}

// Checkpoint is a named inspection point anchored in the location hierarchy.
// Each checkpoint owns its Selection outright; the shared location catalog
// is read-only from its perspective.
type Checkpoint struct {
	ID          string
	Name        string
	Description string
	Location    location.Selection
	ScheduleIDs []int64
}

// Clone deep-copies a draft so submission can run on a stable snapshot.
func (d Draft) Clone() Draft {
	c := d
	if d.ChecklistID != nil {
		id := *d.ChecklistID
		c.ChecklistID = &id
	}
	c.Questions = make([]Question, len(d.Questions))
	for i, q := range d.Questions {
		c.Questions[i] = q
		c.Questions[i].Options = append([]string(nil), q.Options...)
	}
	c.Schedules = make([]Schedule, len(d.Schedules))
	for i, s := range d.Schedules {
		c.Schedules[i] = s
		c.Schedules[i].TimeSetup = s.TimeSetup.Clone()
	}
	c.Checkpoints = make([]Checkpoint, len(d.Checkpoints))
	for i, cp := range d.Checkpoints {
		c.Checkpoints[i] = cp
		c.Checkpoints[i].ScheduleIDs = append([]int64(nil), cp.ScheduleIDs...)
	}
	return c
}
