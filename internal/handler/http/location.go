package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/location"
	"github.com/helloakshay27/hi-society-backend-go/internal/handler/http/response"
)

type LocationHandler interface {
	Buildings(w http.ResponseWriter, r *http.Request)
	Wings(w http.ResponseWriter, r *http.Request)
	Areas(w http.ResponseWriter, r *http.Request)
	Floors(w http.ResponseWriter, r *http.Request)
	Rooms(w http.ResponseWriter, r *http.Request)
}

type locationHandlerImpl struct {
	catalog location.Catalog
}

func NewLocationHandler(catalog location.Catalog) LocationHandler {
	return &locationHandlerImpl{catalog: catalog}
}

func (h *locationHandlerImpl) Buildings(w http.ResponseWriter, r *http.Request) {
	siteID, err := strconv.ParseInt(r.URL.Query().Get("site_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "site_id must be a number", nil)
		return
	}
	h.respond(w, r, location.LevelBuilding, siteID)
}

func (h *locationHandlerImpl) Wings(w http.ResponseWriter, r *http.Request) {
	h.respondForParam(w, r, location.LevelWing)
}

func (h *locationHandlerImpl) Areas(w http.ResponseWriter, r *http.Request) {
	h.respondForParam(w, r, location.LevelArea)
}

func (h *locationHandlerImpl) Floors(w http.ResponseWriter, r *http.Request) {
	h.respondForParam(w, r, location.LevelFloor)
}

func (h *locationHandlerImpl) Rooms(w http.ResponseWriter, r *http.Request) {
	h.respondForParam(w, r, location.LevelRoom)
}

func (h *locationHandlerImpl) respondForParam(w http.ResponseWriter, r *http.Request, level location.Level) {
	parentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "id must be a number", nil)
		return
	}
	h.respond(w, r, level, parentID)
}

func (h *locationHandlerImpl) respond(w http.ResponseWriter, r *http.Request, level location.Level, parentID int64) {
	locations, err := h.catalog.Children(r.Context(), level, parentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := location.ListLocationsResponse{
		Level:     string(level),
		ParentID:  parentID,
		Locations: []location.LocationResponse{},
	}
	for _, l := range locations {
		resp.Locations = append(resp.Locations, location.LocationResponse{ID: l.ID, Name: l.Name})
	}
	response.Success(w, resp)
}
