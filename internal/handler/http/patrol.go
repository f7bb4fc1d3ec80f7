package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/patrol"
	"github.com/helloakshay27/hi-society-backend-go/internal/handler/http/response"
)

type PatrolHandler interface {
	CreateDraft(w http.ResponseWriter, r *http.Request)
	GetDraft(w http.ResponseWriter, r *http.Request)
	UpdateDetails(w http.ResponseWriter, r *http.Request)
	SelectChecklist(w http.ResponseWriter, r *http.Request)
	AddQuestion(w http.ResponseWriter, r *http.Request)
	UpdateQuestion(w http.ResponseWriter, r *http.Request)
	RemoveQuestion(w http.ResponseWriter, r *http.Request)
	AddSchedule(w http.ResponseWriter, r *http.Request)
	UpdateSchedule(w http.ResponseWriter, r *http.Request)
	RemoveSchedule(w http.ResponseWriter, r *http.Request)
	AddCheckpoint(w http.ResponseWriter, r *http.Request)
	UpdateCheckpoint(w http.ResponseWriter, r *http.Request)
	SetCheckpointLocation(w http.ResponseWriter, r *http.Request)
	RemoveCheckpoint(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type patrolHandlerImpl struct {
	service patrol.DraftService
}

func NewPatrolHandler(service patrol.DraftService) PatrolHandler {
	return &patrolHandlerImpl{service: service}
}

func (h *patrolHandlerImpl) CreateDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.CreateDraft(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Draft created", draft)
}

func (h *patrolHandlerImpl) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.GetDraft(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req patrol.UpdateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.UpdateDetails(r.Context(), chi.URLParam(r, "draftID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) SelectChecklist(w http.ResponseWriter, r *http.Request) {
	var req patrol.SelectChecklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.SelectChecklist(r.Context(), chi.URLParam(r, "draftID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) AddQuestion(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.AddQuestion(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req patrol.UpdateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.UpdateQuestion(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "questionID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.RemoveQuestion(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "questionID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) AddSchedule(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.AddSchedule(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req patrol.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.UpdateSchedule(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "scheduleID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) RemoveSchedule(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.RemoveSchedule(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "scheduleID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) AddCheckpoint(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.AddCheckpoint(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) UpdateCheckpoint(w http.ResponseWriter, r *http.Request) {
	var req patrol.UpdateCheckpointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.UpdateCheckpoint(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "checkpointID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) SetCheckpointLocation(w http.ResponseWriter, r *http.Request) {
	var req patrol.SetCheckpointLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.SetCheckpointLocation(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "checkpointID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) RemoveCheckpoint(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.RemoveCheckpoint(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "checkpointID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, draft)
}

func (h *patrolHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Submit(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, result.Message, result)
}
