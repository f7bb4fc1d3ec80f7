package patrol

import "errors"

var (
	ErrDraftNotFound      = errors.New("patrolling draft not found")
	ErrQuestionNotFound   = errors.New("question not found in draft")
	ErrScheduleNotFound   = errors.New("schedule not found in draft")
	ErrCheckpointNotFound = errors.New("checkpoint not found in draft")
	ErrSubmitInProgress   = errors.New("submission already in progress for this draft")
)

// ValidationError is a business-rule failure from the submission pipeline.
// It carries exactly one user-facing message: the pipeline stops at the
// first failing stage and never aggregates.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
