package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/helloakshay27/hi-society-backend-go/internal/handler/http/response"
	"github.com/helloakshay27/hi-society-backend-go/internal/service/directory"
)

type DirectoryHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	ListChecklists(w http.ResponseWriter, r *http.Request)
	GetChecklist(w http.ResponseWriter, r *http.Request)
}

type directoryHandlerImpl struct {
	service directory.Service
}

func NewDirectoryHandler(service directory.Service) DirectoryHandler {
	return &directoryHandlerImpl{service: service}
}

func (h *directoryHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

func (h *directoryHandlerImpl) ListChecklists(w http.ResponseWriter, r *http.Request) {
	checklists, err := h.service.ListChecklists(r.Context(), r.URL.Query().Get("check_type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, checklists)
}

func (h *directoryHandlerImpl) GetChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "id must be a number", nil)
		return
	}

	checklist, err := h.service.GetChecklist(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, checklist)
}
