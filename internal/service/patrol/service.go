package patrol

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/checklist"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/location"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/patrol"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/user"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/platform"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/validator"
)

// draftState wraps a draft with its submit guard. The guard is a plain
// boolean under the store mutex: while true, further submits for the same
// draft are rejected, and every submit path clears it on the way out.
type draftState struct {
	draft      patrol.Draft
	submitting bool
}

type draftServiceImpl struct {
	catalog       location.Catalog
	checklistRepo checklist.Repository
	userRepo      user.Repository
	platform      platform.Client

	mu     sync.Mutex
	drafts map[string]*draftState

	// Monotonic source for schedule cross-reference keys. Seeded from the
	// clock so keys stay unique across restarts of the in-memory store.
	nextScheduleID atomic.Int64
}

func NewDraftService(
	catalog location.Catalog,
	checklistRepo checklist.Repository,
	userRepo user.Repository,
	platformClient platform.Client,
) patrol.DraftService {
	s := &draftServiceImpl{
		catalog:       catalog,
		checklistRepo: checklistRepo,
		userRepo:      userRepo,
		platform:      platformClient,
		drafts:        make(map[string]*draftState),
	}
	s.nextScheduleID.Store(time.Now().UnixMilli())
	return s
}

func (s *draftServiceImpl) newScheduleID() int64 {
	return s.nextScheduleID.Add(1)
}

// CreateDraft implements patrol.DraftService. A fresh draft starts with one
// blank question, one schedule on the default recurrence, and one blank
// checkpoint so every section of the flow has a row to edit.
func (s *draftServiceImpl) CreateDraft(_ context.Context) (patrol.DraftResponse, error) {
	draft := patrol.Draft{
		ID: uuid.NewString(),
		Questions: []patrol.Question{
			{ID: uuid.NewString()},
		},
		Schedules: []patrol.Schedule{
			{
				ID:         uuid.NewString(),
				ScheduleID: s.newScheduleID(),
				TimeSetup:  patrol.DefaultTimeSetup(),
			},
		},
		Checkpoints: []patrol.Checkpoint{
			{ID: uuid.NewString(), ScheduleIDs: []int64{}},
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = &draftState{draft: draft}

	return patrol.ToDraftResponse(draft), nil
}

// GetDraft implements patrol.DraftService.
func (s *draftServiceImpl) GetDraft(_ context.Context, draftID string) (patrol.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}
	return patrol.ToDraftResponse(state.draft), nil
}

// UpdateDetails implements patrol.DraftService.
func (s *draftServiceImpl) UpdateDetails(_ context.Context, draftID string, req patrol.UpdateDetailsRequest) (patrol.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return patrol.DraftResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	if req.Name != nil {
		state.draft.Name = *req.Name
	}
	if req.Description != nil {
		state.draft.Description = *req.Description
	}
	if req.GracePeriodMinutes != nil {
		state.draft.GracePeriodMinutes = *req.GracePeriodMinutes
	}
	if req.StartDate != nil {
		state.draft.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		state.draft.EndDate = *req.EndDate
	}

	return patrol.ToDraftResponse(state.draft), nil
}

// checklist question types map onto the patrol question input types.
var checklistInputTypes = map[string]string{
	"multiple":    patrol.InputTypeMultipleChoice,
	"yesno":       patrol.InputTypeYesNo,
	"rating":      patrol.InputTypeRating,
	"input":       patrol.InputTypeTextInput,
	"description": patrol.InputTypeDescription,
	"emoji":       patrol.InputTypeEmoji,
}

// SelectChecklist implements patrol.DraftService. Picking a checklist
// replaces the draft's question list with the template's questions; clearing
// the selection resets the list to a single blank row.
func (s *draftServiceImpl) SelectChecklist(ctx context.Context, draftID string, req patrol.SelectChecklistRequest) (patrol.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return patrol.DraftResponse{}, err
	}

	var questions []patrol.Question
	if req.ChecklistID != nil {
		template, err := s.checklistRepo.GetByID(ctx, *req.ChecklistID)
		if err != nil {
			return patrol.DraftResponse{}, err
		}
		for _, q := range template.Questions {
			inputType, ok := checklistInputTypes[q.QType]
			if !ok {
				inputType = patrol.InputTypeTextInput
			}
			questions = append(questions, patrol.Question{
				ID:          uuid.NewString(),
				Task:        q.Descr,
				InputType:   inputType,
				Mandatory:   q.Mandatory,
				Options:     append([]string(nil), q.Options...),
				OptionsText: joinOptions(q.Options),
			})
		}
	}
	if len(questions) == 0 {
		questions = []patrol.Question{{ID: uuid.NewString()}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	state.draft.ChecklistID = req.ChecklistID
	state.draft.Questions = questions

	return patrol.ToDraftResponse(state.draft), nil
}

func joinOptions(options []string) string {
	text := ""
	for i, o := range options {
		if i > 0 {
			text += ", "
		}
		text += o
	}
	return text
}

// AddQuestion implements patrol.DraftService.
func (s *draftServiceImpl) AddQuestion(_ context.Context, draftID string) (patrol.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	state.draft.Questions = append(state.draft.Questions, patrol.Question{ID: uuid.NewString()})

	return patrol.ToDraftResponse(state.draft), nil
}

// UpdateQuestion implements patrol.DraftService. Options are re-derived from
// the options text whenever the text or the input type changes.
func (s *draftServiceImpl) UpdateQuestion(_ context.Context, draftID, questionID string, req patrol.UpdateQuestionRequest) (patrol.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return patrol.DraftResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	idx := -1
	for i := range state.draft.Questions {
		if state.draft.Questions[i].ID == questionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return patrol.DraftResponse{}, patrol.ErrQuestionNotFound
	}

	q := &state.draft.Questions[idx]
	if req.Task != nil {
		q.Task = *req.Task
	}
	if req.InputType != nil {
		q.InputType = *req.InputType
	}
	if req.Mandatory != nil {
		q.Mandatory = *req.Mandatory
	}
	if req.OptionsText != nil {
		q.OptionsText = *req.OptionsText
	}
	if q.InputType == patrol.InputTypeMultipleChoice {
		q.Options = patrol.ParseOptions(q.OptionsText)
	} else {
		q.Options = nil
	}

	return patrol.ToDraftResponse(state.draft), nil
}

// RemoveQuestion implements patrol.DraftService.
func (s *draftServiceImpl) RemoveQuestion(_ context.Context, draftID, questionID string) (patrol.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	for i := range state.draft.Questions {
		if state.draft.Questions[i].ID == questionID {
			state.draft.Questions = append(state.draft.Questions[:i], state.draft.Questions[i+1:]...)
			return patrol.ToDraftResponse(state.draft), nil
		}
	}
	return patrol.DraftResponse{}, patrol.ErrQuestionNotFound
}

// AddSchedule implements patrol.DraftService. Every new schedule row gets a
// fresh cross-reference key and the default recurrence.
func (s *draftServiceImpl) AddSchedule(_ context.Context, draftID string) (patrol.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	state.draft.Schedules = append(state.draft.Schedules, patrol.Schedule{
		ID:         uuid.NewString(),
		ScheduleID: s.newScheduleID(),
		TimeSetup:  patrol.DefaultTimeSetup(),
	})

	return patrol.ToDraftResponse(state.draft), nil
}

// UpdateSchedule implements patrol.DraftService. The cross-reference key is
// never touched here; only the editable fields move.
func (s *draftServiceImpl) UpdateSchedule(_ context.Context, draftID, scheduleID string, req patrol.UpdateScheduleRequest) (patrol.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return patrol.DraftResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	idx := -1
	for i := range state.draft.Schedules {
		if state.draft.Schedules[i].ID == scheduleID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return patrol.DraftResponse{}, patrol.ErrScheduleNotFound
	}

	sched := &state.draft.Schedules[idx]
	if req.Start != nil {
		sched.Start = *req.Start
	}
	if req.End != nil {
		sched.End = *req.End
	}
	if req.Assignee != nil {
		sched.Assignee = *req.Assignee
	}
	if req.Supervisor != nil {
		sched.Supervisor = *req.Supervisor
	}
	if req.TimeSetup != nil {
		sched.TimeSetup = req.TimeSetup.Clone()
	}

	return patrol.ToDraftResponse(state.draft), nil
}

// RemoveSchedule implements patrol.DraftService. Deleting a schedule scrubs
// its cross-reference key out of every checkpoint so no checkpoint keeps a
// pointer at a schedule that no longer exists.
func (s *draftServiceImpl) RemoveSchedule(_ context.Context, draftID, scheduleID string) (patrol.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	idx := -1
	for i := range state.draft.Schedules {
		if state.draft.Schedules[i].ID == scheduleID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return patrol.DraftResponse{}, patrol.ErrScheduleNotFound
	}

	removedKey := state.draft.Schedules[idx].ScheduleID
	state.draft.Schedules = append(state.draft.Schedules[:idx], state.draft.Schedules[idx+1:]...)

	for i := range state.draft.Checkpoints {
		kept := state.draft.Checkpoints[i].ScheduleIDs[:0]
		for _, id := range state.draft.Checkpoints[i].ScheduleIDs {
			if id != removedKey {
				kept = append(kept, id)
			}
		}
		state.draft.Checkpoints[i].ScheduleIDs = kept
	}

	return patrol.ToDraftResponse(state.draft), nil
}

// AddCheckpoint implements patrol.DraftService.
func (s *draftServiceImpl) AddCheckpoint(_ context.Context, draftID string) (patrol.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	state.draft.Checkpoints = append(state.draft.Checkpoints, patrol.Checkpoint{
		ID:          uuid.NewString(),
		ScheduleIDs: []int64{},
	})

	return patrol.ToDraftResponse(state.draft), nil
}

// UpdateCheckpoint implements patrol.DraftService. Schedule references are
// stored as authored; stale keys are dropped at assembly time, not here.
func (s *draftServiceImpl) UpdateCheckpoint(_ context.Context, draftID, checkpointID string, req patrol.UpdateCheckpointRequest) (patrol.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	idx := -1
	for i := range state.draft.Checkpoints {
		if state.draft.Checkpoints[i].ID == checkpointID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return patrol.DraftResponse{}, patrol.ErrCheckpointNotFound
	}

	cp := &state.draft.Checkpoints[idx]
	if req.Name != nil {
		cp.Name = *req.Name
	}
	if req.Description != nil {
		cp.Description = *req.Description
	}
	if req.ScheduleIDs != nil {
		cp.ScheduleIDs = append([]int64{}, (*req.ScheduleIDs)...)
	}

	return patrol.ToDraftResponse(state.draft), nil
}

// nextCatalogLevel names the level a selection at the given level unlocks.
var nextCatalogLevel = map[location.Level]location.Level{
	location.LevelBuilding: location.LevelWing,
	location.LevelWing:     location.LevelArea,
	location.LevelArea:     location.LevelFloor,
	location.LevelFloor:    location.LevelRoom,
}

// SetCheckpointLocation implements patrol.DraftService. The selection change
// only touches the addressed checkpoint; afterwards the shared catalog is
// warmed with the next level's options so the follow-up read is a cache hit.
func (s *draftServiceImpl) SetCheckpointLocation(ctx context.Context, draftID, checkpointID string, req patrol.SetCheckpointLocationRequest) (patrol.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return patrol.DraftResponse{}, err
	}

	s.mu.Lock()

	state, ok := s.drafts[draftID]
	if !ok {
		s.mu.Unlock()
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	idx := -1
	for i := range state.draft.Checkpoints {
		if state.draft.Checkpoints[i].ID == checkpointID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return patrol.DraftResponse{}, patrol.ErrCheckpointNotFound
	}

	level := location.Level(req.Level)
	updated, err := state.draft.Checkpoints[idx].Location.With(level, *req.ID)
	if err != nil {
		s.mu.Unlock()
		return patrol.DraftResponse{}, err
	}
	state.draft.Checkpoints[idx].Location = updated
	resp := patrol.ToDraftResponse(state.draft)
	s.mu.Unlock()

	// Warming is best effort; a failed load is retried when the options are
	// actually requested.
	if next, ok := nextCatalogLevel[level]; ok {
		_, _ = s.catalog.Children(ctx, next, *req.ID)
	}

	return resp, nil
}

// RemoveCheckpoint implements patrol.DraftService.
func (s *draftServiceImpl) RemoveCheckpoint(_ context.Context, draftID, checkpointID string) (patrol.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[draftID]
	if !ok {
		return patrol.DraftResponse{}, patrol.ErrDraftNotFound
	}

	for i := range state.draft.Checkpoints {
		if state.draft.Checkpoints[i].ID == checkpointID {
			state.draft.Checkpoints = append(state.draft.Checkpoints[:i], state.draft.Checkpoints[i+1:]...)
			return patrol.ToDraftResponse(state.draft), nil
		}
	}
	return patrol.DraftResponse{}, patrol.ErrCheckpointNotFound
}

// Submit implements patrol.DraftService. The draft is snapshotted under the
// submit guard, validated fail-fast, assembled, and posted. Only a
// successful post discards the draft; every failure releases the guard with
// the draft intact so the operator can fix and retry.
func (s *draftServiceImpl) Submit(ctx context.Context, draftID string) (patrol.SubmitResponse, error) {
	s.mu.Lock()
	state, ok := s.drafts[draftID]
	if !ok {
		s.mu.Unlock()
		return patrol.SubmitResponse{}, patrol.ErrDraftNotFound
	}
	if state.submitting {
		s.mu.Unlock()
		return patrol.SubmitResponse{}, patrol.ErrSubmitInProgress
	}
	state.submitting = true
	snapshot := state.draft.Clone()
	s.mu.Unlock()

	release := func() {
		s.mu.Lock()
		if st, ok := s.drafts[draftID]; ok {
			st.submitting = false
		}
		s.mu.Unlock()
	}

	if err := validateDraft(snapshot); err != nil {
		release()
		return patrol.SubmitResponse{}, err
	}

	payload := assemblePayload(snapshot)

	if err := s.platform.CreatePatrolling(ctx, payload); err != nil {
		release()
		return patrol.SubmitResponse{}, err
	}

	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()

	return s.submitResponse(ctx, snapshot), nil
}

// submitResponse echoes the submitted schedules with assignee and supervisor
// names resolved from the user directory. The lookup is best effort: a
// directory failure never fails an already accepted submission.
func (s *draftServiceImpl) submitResponse(ctx context.Context, draft patrol.Draft) patrol.SubmitResponse {
	ids := make([]int64, 0, len(draft.Schedules)*2)
	for _, sched := range draft.Schedules {
		if n, ok := validator.ParsePositiveInt(sched.Assignee); ok {
			ids = append(ids, int64(n))
		}
		if n, ok := validator.ParsePositiveInt(sched.Supervisor); ok {
			ids = append(ids, int64(n))
		}
	}

	names := make(map[int64]string)
	if users, err := s.userRepo.GetByIDs(ctx, ids); err == nil {
		for _, u := range users {
			names[u.ID] = u.FullName
		}
	}

	resp := patrol.SubmitResponse{
		Message:   "Patrolling created successfully",
		Schedules: []patrol.SubmittedScheduleInfo{},
	}
	for _, sched := range draft.Schedules {
		info := patrol.SubmittedScheduleInfo{ScheduleID: sched.ScheduleID}
		if n, ok := validator.ParsePositiveInt(sched.Assignee); ok {
			info.AssigneeName = names[int64(n)]
		}
		if n, ok := validator.ParsePositiveInt(sched.Supervisor); ok {
			info.SupervisorName = names[int64(n)]
		}
		resp.Schedules = append(resp.Schedules, info)
	}
	return resp
}
