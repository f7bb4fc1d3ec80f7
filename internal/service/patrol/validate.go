package patrol

import (
	"strings"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/patrol"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/validator"
)

// validateDraft runs the submission checks in a fixed order and stops at the
// first failure. The stages move from draft basics through questions and
// schedules to checkpoints, so the operator always sees the earliest broken
// section first.
func validateDraft(d patrol.Draft) error {
	if err := checkRequiredDetails(d); err != nil {
		return err
	}
	if err := checkDateOrder(d); err != nil {
		return err
	}
	if err := checkGracePeriod(d); err != nil {
		return err
	}
	if err := checkQuestionsPresent(d); err != nil {
		return err
	}
	if err := checkQuestionInputTypes(d); err != nil {
		return err
	}
	if err := checkMultipleChoiceOptions(d); err != nil {
		return err
	}
	if err := checkScheduleTimeSetups(d); err != nil {
		return err
	}
	if err := checkScheduleAssignments(d); err != nil {
		return err
	}
	if err := checkCheckpointsPresent(d); err != nil {
		return err
	}
	return checkCheckpointLocations(d)
}

func checkRequiredDetails(d patrol.Draft) error {
	var missing []string
	if validator.IsEmpty(d.Name) {
		missing = append(missing, "Name")
	}
	if validator.IsEmpty(d.StartDate) {
		missing = append(missing, "Start Date")
	}
	if validator.IsEmpty(d.EndDate) {
		missing = append(missing, "End Date")
	}
	if validator.IsEmpty(d.GracePeriodMinutes) {
		missing = append(missing, "Grace Period")
	}
	if len(missing) > 0 {
		return patrol.ValidationError{
			Message: "Please fill in the following required fields: " + strings.Join(missing, ", "),
		}
	}
	return nil
}

func checkDateOrder(d patrol.Draft) error {
	start, startOK := validator.IsValidDate(d.StartDate)
	end, endOK := validator.IsValidDate(d.EndDate)
	if !startOK || !endOK || !end.After(start) {
		return patrol.ValidationError{Message: "End date must be after start date"}
	}
	return nil
}

func checkGracePeriod(d patrol.Draft) error {
	if _, ok := validator.ParsePositiveInt(d.GracePeriodMinutes); !ok {
		return patrol.ValidationError{Message: "Grace period must be a positive number of minutes"}
	}
	return nil
}

// filledQuestions returns the questions the operator actually authored.
// Blank rows left over from the editing flow are not an error, they are
// simply ignored.
func filledQuestions(d patrol.Draft) []patrol.Question {
	var filled []patrol.Question
	for _, q := range d.Questions {
		if !validator.IsEmpty(q.Task) {
			filled = append(filled, q)
		}
	}
	return filled
}

func checkQuestionsPresent(d patrol.Draft) error {
	if len(filledQuestions(d)) == 0 {
		return patrol.ValidationError{Message: "At least one question is required"}
	}
	return nil
}

func checkQuestionInputTypes(d patrol.Draft) error {
	for _, q := range filledQuestions(d) {
		if validator.IsEmpty(q.InputType) {
			return patrol.ValidationError{Message: "All questions must have an input type selected"}
		}
	}
	return nil
}

func checkMultipleChoiceOptions(d patrol.Draft) error {
	for _, q := range filledQuestions(d) {
		if q.InputType == patrol.InputTypeMultipleChoice && len(patrol.ParseOptions(q.OptionsText)) < 2 {
			return patrol.ValidationError{Message: "Multiple choice questions must have at least 2 options"}
		}
	}
	return nil
}

func checkScheduleTimeSetups(d patrol.Draft) error {
	for _, sched := range d.Schedules {
		if err := sched.TimeSetup.Validate(); err != nil {
			return patrol.ValidationError{Message: "Schedule time setup error: " + err.Error()}
		}
	}
	return nil
}

func checkScheduleAssignments(d patrol.Draft) error {
	for _, sched := range d.Schedules {
		if validator.IsEmpty(sched.Assignee) {
			return patrol.ValidationError{Message: "All schedules must have an assignee"}
		}
	}
	for _, sched := range d.Schedules {
		if validator.IsEmpty(sched.Supervisor) {
			return patrol.ValidationError{Message: "All schedules must have a supervisor"}
		}
	}
	return nil
}

// filledCheckpoints mirrors filledQuestions: only named checkpoints count.
func filledCheckpoints(d patrol.Draft) []patrol.Checkpoint {
	var filled []patrol.Checkpoint
	for _, cp := range d.Checkpoints {
		if !validator.IsEmpty(cp.Name) {
			filled = append(filled, cp)
		}
	}
	return filled
}

func checkCheckpointsPresent(d patrol.Draft) error {
	if len(filledCheckpoints(d)) == 0 {
		return patrol.ValidationError{Message: "At least one checkpoint is required"}
	}
	return nil
}

func checkCheckpointLocations(d patrol.Draft) error {
	for _, cp := range filledCheckpoints(d) {
		if !cp.Location.Complete() {
			return patrol.ValidationError{Message: "All checkpoints must have Building, Wing, Area, and Floor selected"}
		}
	}
	return nil
}
