package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/myyapa/discover/pkg/datastructure"
	helper "github.com/myyapa/discover/pkg/http/http-router/router-helper"

	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

var (
	regexSearch = regexp.MustCompile("^[A-Za-z0-9_ '+,.()-]+$")
)

type discoverAPI struct {
	discoverService DiscoverService
	sessionService  SessionService
	log             *zap.Logger
}

func New(discoverService DiscoverService, sessionService SessionService, log *zap.Logger) *discoverAPI {
	return &discoverAPI{
		discoverService: discoverService,
		sessionService:  sessionService,
		log:             log,
	}
}

func (api *discoverAPI) Routes(group *helper.RouteGroup) {
	group.GET("/suggest", api.suggest)
	group.GET("/autocomplete", api.autocomplete)
	group.GET("/places", api.places)
	group.GET("/campuses", api.campuses)

	group.POST("/sessions", api.createSession)
	group.POST("/sessions/:id/select", api.selectPlace)
	group.POST("/sessions/:id/center", api.setCenter)
	group.POST("/sessions/:id/filter", api.setFilter)
	group.GET("/sessions/:id/markers", api.markers)

	group.POST("/saved/:placeID", api.toggleSaved)
}

// suggestRequest model info
//
//	@Description	request body for the unified search dropdown.
type suggestRequest struct {
	Query    string   `json:"query" validate:"required"` // text typed into the search box
	Lat      *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng      *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
	CampusID string   `json:"campus_id"` // active campus filter, empty for none
}

// suggest godoc
// @Summary		unified search: campus and place suggestions ranked by distance from the reference point.
// @Description	unified search: campus and place suggestions ranked by distance from the reference point.
// @Tags			discover
// @ID suggest
// @Accept			application/json
// @Produce		application/json
// @Router			/api/suggest [get]
func (api *discoverAPI) suggest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if messages := validateStruct(request); messages != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", messages))
		return
	}
	if !regexSearch.MatchString(request.Query) {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: query must be alphanumeric or contain special characters: +, ., (, ), ,"))
		return
	}
	if (request.Lat == nil) != (request.Lng == nil) {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: lat and lng must be provided together"))
		return
	}

	var userFix *datastructure.Point
	if request.Lat != nil {
		fix := datastructure.NewPoint(*request.Lat, *request.Lng)
		userFix = &fix
	}

	results := api.discoverService.Suggest(request.Query, userFix, request.CampusID)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type autocompleteRequest struct {
	Query string `json:"query" validate:"required"`
	TopK  int    `json:"top_k" validate:"min=0,max=100"`
}

// autocomplete godoc
// @Summary		prefix autocomplete over place names.
// @Description	prefix autocomplete over place names.
// @Tags			discover
// @ID autocomplete
// @Accept			application/json
// @Produce		application/json
// @Router			/api/autocomplete [get]
func (api *discoverAPI) autocomplete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request autocompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if messages := validateStruct(request); messages != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", messages))
		return
	}
	if !regexSearch.MatchString(request.Query) {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: query must be alphanumeric or contain special characters: +, ., (, ), ,"))
		return
	}

	results, err := api.discoverService.Autocomplete(request.Query, request.TopK)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// places godoc
// @Summary		list places, optionally restricted to a category and sorted nearest-first.
// @Description	list places, optionally restricted to a category and sorted nearest-first.
// @Tags			discover
// @ID places
// @Produce		application/json
// @Router			/api/places [get]
func (api *discoverAPI) places(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	category := query.Get("category")

	var refPoint *datastructure.Point
	latParam, lngParam := query.Get("lat"), query.Get("lng")
	if latParam != "" || lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr != nil || lngErr != nil {
			api.BadRequestResponse(w, r, fmt.Errorf("validation error: lat and lng must both be valid numbers"))
			return
		}
		point := datastructure.NewPoint(lat, lng)
		refPoint = &point
	}

	results := api.discoverService.Places(category, refPoint)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// campuses godoc
// @Summary		static campus reference list.
// @Description	static campus reference list.
// @Tags			discover
// @ID campuses
// @Produce		application/json
// @Router			/api/campuses [get]
func (api *discoverAPI) campuses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.discoverService.Campuses()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// toggleSaved godoc
// @Summary		toggle a place's saved flag.
// @Description	toggle a place's saved flag.
// @Tags			discover
// @ID toggle-saved
// @Produce		application/json
// @Router			/api/saved/{placeID} [post]
func (api *discoverAPI) toggleSaved(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	placeID := params.ByName("placeID")

	saved, err := api.discoverService.ToggleSaved(placeID)
	if err != nil {
		api.NotFoundResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": envelope{"place_id": placeID, "saved": saved}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
