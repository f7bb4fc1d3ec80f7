package patrol

import (
	"strconv"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/patrol"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/validator"
)

// assemblePayload turns a validated draft snapshot into the one-shot
// document the platform endpoint accepts. Assembly never mutates the
// snapshot and assumes validateDraft has already passed, so the grace
// period parses and every schedule compiles.
func assemblePayload(d patrol.Draft) patrol.SubmissionPayload {
	grace, _ := validator.ParsePositiveInt(d.GracePeriodMinutes)

	payload := patrol.PatrollingPayload{
		Name:               d.Name,
		Description:        d.Description,
		ValidityStartDate:  d.StartDate,
		ValidityEndDate:    d.EndDate,
		ChecklistID:        d.ChecklistID,
		GracePeriodMinutes: grace,
		Schedules:          []patrol.SchedulePayload{},
		Checkpoints:        []patrol.CheckpointPayload{},
	}

	liveScheduleIDs := make(map[int64]bool, len(d.Schedules))
	for _, sched := range d.Schedules {
		liveScheduleIDs[sched.ScheduleID] = true

		flags := sched.TimeSetup.Flags()
		payload.Schedules = append(payload.Schedules, patrol.SchedulePayload{
			AssignedGuardID: parseUserID(sched.Assignee),
			SupervisorID:    parseUserID(sched.Supervisor),
			ScheduleID:      sched.ScheduleID,
			TimeSetup: patrol.TimeSetupPayload{
				TimeSetup:        sched.TimeSetup,
				CronMinute:       flags.Minute,
				CronMinuteValues: flags.MinuteValues,
				CronHour:         flags.Hour,
				CronHourValues:   flags.HourValues,
				CronDay:          flags.Day,
				CronMonth:        flags.Month,
				CronExpression:   sched.TimeSetup.CronExpression(),
			},
		})
	}

	for _, cp := range d.Checkpoints {
		if validator.IsEmpty(cp.Name) {
			continue
		}

		// References to schedules that no longer exist are dropped rather
		// than rejected; the remaining links stay intact.
		refs := []int64{}
		for _, id := range cp.ScheduleIDs {
			if liveScheduleIDs[id] {
				refs = append(refs, id)
			}
		}

		payload.Checkpoints = append(payload.Checkpoints, patrol.CheckpointPayload{
			Name:        cp.Name,
			Description: cp.Description,
			BuildingID:  formatLocationID(cp.Location.BuildingID),
			WingID:      formatLocationID(cp.Location.WingID),
			FloorID:     formatLocationID(cp.Location.FloorID),
			AreaID:      formatLocationID(cp.Location.AreaID),
			RoomID:      formatLocationID(cp.Location.RoomID),
			ScheduleIDs: refs,
		})
	}

	return patrol.SubmissionPayload{Patrolling: payload}
}

func parseUserID(s string) *int64 {
	n, ok := validator.ParsePositiveInt(s)
	if !ok {
		return nil
	}
	id := int64(n)
	return &id
}

func formatLocationID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
