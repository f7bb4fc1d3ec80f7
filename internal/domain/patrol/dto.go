package patrol

import (
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/location"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/validator"
)

type UpdateDetailsRequest struct {
	Name               *string `json:"name,omitempty"`
	Description        *string `json:"description,omitempty"`
	GracePeriodMinutes *string `json:"grace_period_minutes,omitempty"`
	StartDate          *string `json:"start_date,omitempty"`
	EndDate            *string `json:"end_date,omitempty"`
}

func (r *UpdateDetailsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil && !validator.IsEmpty(*r.StartDate) {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil && !validator.IsEmpty(*r.EndDate) {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SelectChecklistRequest struct {
	ChecklistID *int64 `json:"checklist_id"`
}

func (r *SelectChecklistRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ChecklistID != nil && *r.ChecklistID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "checklist_id",
			Message: "checklist_id must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateQuestionRequest struct {
	Task        *string `json:"task,omitempty"`
	InputType   *string `json:"input_type,omitempty"`
	Mandatory   *bool   `json:"mandatory,omitempty"`
	OptionsText *string `json:"options_text,omitempty"`
}

func (r *UpdateQuestionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.InputType != nil && *r.InputType != "" && !validator.IsInSlice(*r.InputType, QuestionInputTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "input_type",
			Message: "input_type must be one of: yes_no, multiple_choice, rating, text_input, description, emoji",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateScheduleRequest struct {
	Start      *string    `json:"start,omitempty"`
	End        *string    `json:"end,omitempty"`
	Assignee   *string    `json:"assignee,omitempty"`
	Supervisor *string    `json:"supervisor,omitempty"`
	TimeSetup  *TimeSetup `json:"time_setup,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TimeSetup != nil {
		t := r.TimeSetup
		if !validator.IsInSlice(string(t.HourMode), HourModeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "time_setup.hour_mode",
				Message: "hour_mode must be one of: specific, between",
			})
		}
		if !validator.IsInSlice(string(t.MinuteMode), MinuteModeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "time_setup.minute_mode",
				Message: "minute_mode must be one of: specific, between",
			})
		}
		if !validator.IsInSlice(string(t.DayMode), DayModeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "time_setup.day_mode",
				Message: "day_mode must be one of: weekdays, specific",
			})
		}
		if !validator.IsInSlice(string(t.MonthMode), MonthModeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "time_setup.month_mode",
				Message: "month_mode must be one of: specific, between, all",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCheckpointRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	ScheduleIDs *[]int64 `json:"schedule_ids,omitempty"`
}

type SetCheckpointLocationRequest struct {
	Level string `json:"level"`
	ID    *int64 `json:"id"`
}

func (r *SetCheckpointLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Level) {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level is required",
		})
	} else if !validator.IsInSlice(r.Level, location.LevelValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level must be one of: building, wing, area, floor, room",
		})
	}
	if r.ID == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.ID != nil && *r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ==================== RESPONSES ====================

type DraftResponse struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	StartDate          string               `json:"start_date"`
	EndDate            string               `json:"end_date"`
	GracePeriodMinutes string               `json:"grace_period_minutes"`
	ChecklistID        *int64               `json:"checklist_id,omitempty"`
	Questions          []QuestionResponse   `json:"questions"`
	Schedules          []ScheduleResponse   `json:"schedules"`
	Checkpoints        []CheckpointResponse `json:"checkpoints"`
}

type QuestionResponse struct {
	ID          string   `json:"id"`
	Task        string   `json:"task"`
	InputType   string   `json:"input_type"`
	Mandatory   bool     `json:"mandatory"`
	Options     []string `json:"options"`
	OptionsText string   `json:"options_text"`
}

type ScheduleResponse struct {
	ID         string    `json:"id"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Assignee   string    `json:"assignee"`
	Supervisor string    `json:"supervisor"`
	ScheduleID int64     `json:"schedule_id"`
	TimeSetup  TimeSetup `json:"time_setup"`
}

type CheckpointResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Location    location.Selection `json:"location"`
	ScheduleIDs []int64            `json:"schedule_ids"`
}

func ToDraftResponse(d Draft) DraftResponse {
	resp := DraftResponse{
		ID:                 d.ID,
		Name:               d.Name,
		Description:        d.Description,
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		GracePeriodMinutes: d.GracePeriodMinutes,
		ChecklistID:        d.ChecklistID,
		Questions:          []QuestionResponse{},
		Schedules:          []ScheduleResponse{},
		Checkpoints:        []CheckpointResponse{},
	}
	for _, q := range d.Questions {
		resp.Questions = append(resp.Questions, QuestionResponse{
			ID:          q.ID,
			Task:        q.Task,
			InputType:   q.InputType,
			Mandatory:   q.Mandatory,
			Options:     q.Options,
			OptionsText: q.OptionsText,
		})
	}
	for _, s := range d.Schedules {
		resp.Schedules = append(resp.Schedules, ScheduleResponse{
			ID:         s.ID,
			Start:      s.Start,
			End:        s.End,
			Assignee:   s.Assignee,
			Supervisor: s.Supervisor,
			ScheduleID: s.ScheduleID,
			TimeSetup:  s.TimeSetup,
		})
	}
	for _, c := range d.Checkpoints {
		resp.Checkpoints = append(resp.Checkpoints, CheckpointResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Location:    c.Location,
			ScheduleIDs: c.ScheduleIDs,
		})
	}
	return resp
}

type SubmitResponse struct {
	Message   string                  `json:"message"`
	Schedules []SubmittedScheduleInfo `json:"schedules"`
}

// SubmittedScheduleInfo echoes who a submitted schedule was assigned to.
// Names come from a best-effort directory lookup and may be empty.
type SubmittedScheduleInfo struct {
	ScheduleID     int64  `json:"schedule_id"`
	AssigneeName   string `json:"assignee_name,omitempty"`
	SupervisorName string `json:"supervisor_name,omitempty"`
}

// ==================== SUBMISSION PAYLOAD ====================

// SubmissionPayload is the one-shot document posted to the platform's
// patrolling-setup endpoint. Field names follow the platform API contract.
type SubmissionPayload struct {
	Patrolling PatrollingPayload `json:"patrolling"`
}

type PatrollingPayload struct {
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	ValidityStartDate  string              `json:"validity_start_date"`
	ChecklistID        *int64              `json:"checklist_id,omitempty"`
	ValidityEndDate    string              `json:"validity_end_date"`
	GracePeriodMinutes int                 `json:"grace_period_minutes"`
	Schedules          []SchedulePayload   `json:"schedules"`
	Checkpoints        []CheckpointPayload `json:"checkpoints"`
}

type SchedulePayload struct {
	AssignedGuardID *int64           `json:"assigned_guard_id"`
	SupervisorID    *int64           `json:"supervisor_id"`
	ScheduleID      int64            `json:"schedule_id"`
	TimeSetup       TimeSetupPayload `json:"time_setup"`
}

type TimeSetupPayload struct {
	TimeSetup

	CronMinute       string `json:"cron_minute"`
	CronMinuteValues string `json:"cron_minute_values"`
	CronHour         string `json:"cron_hour"`
	CronHourValues   string `json:"cron_hour_values"`
	CronDay          string `json:"cron_day"`
	CronMonth        string `json:"cron_month"`
	CronExpression   string `json:"cron_expression"`
}

type CheckpointPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BuildingID  string  `json:"building_id"`
	WingID      string  `json:"wing_id"`
	FloorID     string  `json:"floor_id"`
	AreaID      string  `json:"area_id"`
	RoomID      string  `json:"room_id"`
	ScheduleIDs []int64 `json:"schedule_ids"`
}
