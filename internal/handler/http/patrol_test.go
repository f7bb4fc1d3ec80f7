package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/checklist"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/location"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/patrol"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/user"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/jwt"
	locationService "github.com/helloakshay27/hi-society-backend-go/internal/service/location"
	patrolService "github.com/helloakshay27/hi-society-backend-go/internal/service/patrol"

	directoryService "github.com/helloakshay27/hi-society-backend-go/internal/service/directory"
)

// ==================== FAKES ====================

type stubLocationRepo struct {
	mu    sync.Mutex
	calls int
}

func (s *stubLocationRepo) Children(_ context.Context, level location.Level, parentID int64) ([]location.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return []location.Location{
		{ID: parentID*10 + 1, ParentID: parentID, Name: fmt.Sprintf("%s one", level)},
		{ID: parentID*10 + 2, ParentID: parentID, Name: fmt.Sprintf("%s two", level)},
	}, nil
}

func (s *stubLocationRepo) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubChecklistRepo struct{}

func (stubChecklistRepo) ListByCheckType(_ context.Context, checkType string) ([]checklist.Checklist, error) {
	return []checklist.Checklist{{ID: 5, Name: "Gate Checks", CheckType: checkType}}, nil
}

func (stubChecklistRepo) GetByID(_ context.Context, id int64) (checklist.Checklist, error) {
	if id != 5 {
		return checklist.Checklist{}, checklist.ErrChecklistNotFound
	}
	return checklist.Checklist{
		ID:        5,
		Name:      "Gate Checks",
		CheckType: checklist.CheckTypePatrolling,
		Questions: []checklist.Question{
			{ID: 1, Descr: "Gate locked?", QType: "yesno", Mandatory: true},
		},
	}, nil
}

type stubUserRepo struct{}

func (stubUserRepo) List(_ context.Context) ([]user.User, error) {
	return []user.User{
		{ID: 101, FullName: "Amit Sharma", Email: "amit@example.com"},
		{ID: 202, FullName: "Priya Desai", Email: "priya@example.com"},
	}, nil
}

func (stubUserRepo) GetByIDs(_ context.Context, ids []int64) ([]user.User, error) {
	all, _ := stubUserRepo{}.List(context.Background())
	var out []user.User
	for _, id := range ids {
		for _, u := range all {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

type stubPlatform struct {
	mu       sync.Mutex
	payloads []patrol.SubmissionPayload
}

func (s *stubPlatform) CreatePatrolling(_ context.Context, payload patrol.SubmissionPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return nil
}

type testEnv struct {
	router       *chi.Mux
	token        string
	platform     *stubPlatform
	locationRepo *stubLocationRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	JWTService := jwt.NewJWTService("test-secret-key", "1h")
	token, _, err := JWTService.GenerateAccessToken("1", "ops@example.com")
	require.NoError(t, err)

	locationRepo := &stubLocationRepo{}
	platformClient := &stubPlatform{}
	catalog := locationService.NewCatalog(locationRepo)
	draftService := patrolService.NewDraftService(catalog, stubChecklistRepo{}, stubUserRepo{}, platformClient)
	directorySvc := directoryService.NewDirectoryService(stubUserRepo{}, stubChecklistRepo{})

	router := NewRouter(
		JWTService,
		NewPatrolHandler(draftService),
		NewLocationHandler(catalog),
		NewDirectoryHandler(directorySvc),
	)

	return &testEnv{
		router:       router,
		token:        token,
		platform:     platformClient,
		locationRepo: locationRepo,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (e *testEnv) createDraft(t *testing.T) patrol.DraftResponse {
	t.Helper()

	rec, env := e.do(t, http.MethodPost, "/api/v1/patrollings/drafts", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var draft patrol.DraftResponse
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	return draft
}

// ==================== AUTH ====================

func TestRouterRejectsMissingToken(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrollings/drafts", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ==================== DRAFT ENDPOINTS ====================

func TestCreateAndGetDraft(t *testing.T) {
	env := newTestEnv(t)

	draft := env.createDraft(t)
	assert.NotEmpty(t, draft.ID)
	assert.Len(t, draft.Questions, 1)
	assert.Len(t, draft.Schedules, 1)
	assert.Len(t, draft.Checkpoints, 1)

	rec, getEnv := env.do(t, http.MethodGet, "/api/v1/patrollings/drafts/"+draft.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var fetched patrol.DraftResponse
	require.NoError(t, json.Unmarshal(getEnv.Data, &fetched))
	assert.Equal(t, draft.ID, fetched.ID)
}

func TestGetDraftNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/patrollings/drafts/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestUpdateDetailsRejectsMalformedDate(t *testing.T) {
	env := newTestEnv(t)
	draft := env.createDraft(t)

	rec, body := env.do(t, http.MethodPut, "/api/v1/patrollings/drafts/"+draft.ID+"/details", map[string]any{
		"start_date": "not-a-date",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "start_date")
}

func TestSelectChecklistEndpoint(t *testing.T) {
	env := newTestEnv(t)
	draft := env.createDraft(t)

	rec, body := env.do(t, http.MethodPut, "/api/v1/patrollings/drafts/"+draft.ID+"/checklist", map[string]any{
		"checklist_id": 5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated patrol.DraftResponse
	require.NoError(t, json.Unmarshal(body.Data, &updated))
	require.Len(t, updated.Questions, 1)
	assert.Equal(t, "Gate locked?", updated.Questions[0].Task)
	assert.Equal(t, patrol.InputTypeYesNo, updated.Questions[0].InputType)

	rec, _ = env.do(t, http.MethodPut, "/api/v1/patrollings/drafts/"+draft.ID+"/checklist", map[string]any{
		"checklist_id": 42,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitInvalidDraftReturnsPipelineMessage(t *testing.T) {
	env := newTestEnv(t)
	draft := env.createDraft(t)

	rec, body := env.do(t, http.MethodPost, "/api/v1/patrollings/drafts/"+draft.ID+"/submit", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Message, "Please fill in the following required fields:")
	assert.Empty(t, env.platform.payloads)
}

func TestFullDraftFlowEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	draft := env.createDraft(t)
	base := "/api/v1/patrollings/drafts/" + draft.ID

	rec, _ := env.do(t, http.MethodPut, base+"/details", map[string]any{
		"name":                 "Night Patrol",
		"description":          "Tower A rounds",
		"start_date":           "2026-09-01",
		"end_date":             "2026-12-31",
		"grace_period_minutes": "15",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.do(t, http.MethodPut, base+"/questions/"+draft.Questions[0].ID, map[string]any{
		"task":       "Is the gate locked?",
		"input_type": "yes_no",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	setup := patrol.DefaultTimeSetup()
	setup.SelectedWeekdays = []string{"Monday", "Wednesday"}
	rec, _ = env.do(t, http.MethodPut, base+"/schedules/"+draft.Schedules[0].ID, map[string]any{
		"assignee":   "101",
		"supervisor": "202",
		"time_setup": setup,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.do(t, http.MethodPut, base+"/checkpoints/"+draft.Checkpoints[0].ID, map[string]any{
		"name":         "Main Gate",
		"schedule_ids": []int64{draft.Schedules[0].ScheduleID},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	for _, step := range []struct {
		level string
		id    int64
	}{
		{"building", 1}, {"wing", 11}, {"area", 111}, {"floor", 1111},
	} {
		rec, _ = env.do(t, http.MethodPut, base+"/checkpoints/"+draft.Checkpoints[0].ID+"/location", map[string]any{
			"level": step.level,
			"id":    step.id,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, body := env.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result patrol.SubmitResponse
	require.NoError(t, json.Unmarshal(body.Data, &result))
	require.Len(t, result.Schedules, 1)
	assert.Equal(t, "Amit Sharma", result.Schedules[0].AssigneeName)

	require.Len(t, env.platform.payloads, 1)
	p := env.platform.payloads[0].Patrolling
	assert.Equal(t, "Night Patrol", p.Name)
	require.Len(t, p.Schedules, 1)
	assert.Equal(t, "00 12 ? * 2,4", p.Schedules[0].TimeSetup.CronExpression)
	require.Len(t, p.Checkpoints, 1)
	assert.Equal(t, "1111", p.Checkpoints[0].FloorID)

	// The submitted draft is gone.
	rec, _ = env.do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ==================== REFERENCE DATA ENDPOINTS ====================

func TestLocationEndpointServesAndCaches(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/locations/buildings?site_id=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list location.ListLocationsResponse
	require.NoError(t, json.Unmarshal(body.Data, &list))
	assert.Equal(t, "building", list.Level)
	assert.Len(t, list.Locations, 2)

	rec, _ = env.do(t, http.MethodGet, "/api/v1/locations/buildings?site_id=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, env.locationRepo.callCount())

	rec, _ = env.do(t, http.MethodGet, "/api/v1/locations/buildings/1/wings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, env.locationRepo.callCount())
}

func TestLocationEndpointRejectsBadSiteID(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/locations/buildings?site_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
}

func TestUsersAndChecklistsEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users user.ListUsersResponse
	require.NoError(t, json.Unmarshal(body.Data, &users))
	assert.Len(t, users.Users, 2)

	rec, body = env.do(t, http.MethodGet, "/api/v1/checklists?check_type=patrolling", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var checklists []checklist.ChecklistResponse
	require.NoError(t, json.Unmarshal(body.Data, &checklists))
	require.Len(t, checklists, 1)
	assert.Equal(t, "Gate Checks", checklists[0].Name)

	rec, _ = env.do(t, http.MethodGet, "/api/v1/checklists/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
