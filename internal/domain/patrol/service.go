package patrol

import "context"

type DraftService interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context) (DraftResponse, error)
	GetDraft(ctx context.Context, draftID string) (DraftResponse, error)
	UpdateDetails(ctx context.Context, draftID string, req UpdateDetailsRequest) (DraftResponse, error)
	SelectChecklist(ctx context.Context, draftID string, req SelectChecklistRequest) (DraftResponse, error)

	// Questions
	AddQuestion(ctx context.Context, draftID string) (DraftResponse, error)
	UpdateQuestion(ctx context.Context, draftID, questionID string, req UpdateQuestionRequest) (DraftResponse, error)
	RemoveQuestion(ctx context.Context, draftID, questionID string) (DraftResponse, error)

	// Schedules
	AddSchedule(ctx context.Context, draftID string) (DraftResponse, error)
	UpdateSchedule(ctx context.Context, draftID, scheduleID string, req UpdateScheduleRequest) (DraftResponse, error)
	RemoveSchedule(ctx context.Context, draftID, scheduleID string) (DraftResponse, error)

	// Checkpoints
	AddCheckpoint(ctx context.Context, draftID string) (DraftResponse, error)
	UpdateCheckpoint(ctx context.Context, draftID, checkpointID string, req UpdateCheckpointRequest) (DraftResponse, error)
	SetCheckpointLocation(ctx context.Context, draftID, checkpointID string, req SetCheckpointLocationRequest) (DraftResponse, error)
	RemoveCheckpoint(ctx context.Context, draftID, checkpointID string) (DraftResponse, error)

	// Submission
	Submit(ctx context.Context, draftID string) (SubmitResponse, error)
}
