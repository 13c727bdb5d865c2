package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/myyapa/discover/pkg/datastructure"

	"github.com/julienschmidt/httprouter"
)

// createSession godoc
// @Summary		open a map session at the default city-wide viewport.
// @Description	open a map session at the default city-wide viewport.
// @Tags			session
// @ID create-session
// @Produce		application/json
// @Router			/api/sessions [post]
func (api *discoverAPI) createSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, zoom := api.sessionService.Create()

	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": envelope{"session_id": id, "zoom": zoom}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type selectRequest struct {
	PlaceID string `json:"place_id" validate:"required"`
}

// selectPlace godoc
// @Summary		select a place: pans to it and raises zoom to the selection floor.
// @Description	select a place: pans to it and raises zoom to the selection floor.
// @Tags			session
// @ID select-place
// @Accept			application/json
// @Produce		application/json
// @Router			/api/sessions/{id}/select [post]
func (api *discoverAPI) selectPlace(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	var request selectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if messages := validateStruct(request); messages != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", messages))
		return
	}

	instruction, err := api.sessionService.Select(params.ByName("id"), request.PlaceID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			api.NotFoundResponse(w, r, err)
			return
		}
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": instruction}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type centerRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// setCenter godoc
// @Summary		feed a desired center; identical repeats issue no pan.
// @Description	feed a desired center; identical repeats issue no pan.
// @Tags			session
// @ID set-center
// @Accept			application/json
// @Produce		application/json
// @Router			/api/sessions/{id}/center [post]
func (api *discoverAPI) setCenter(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	var request centerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if messages := validateStruct(request); messages != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", messages))
		return
	}

	instruction, panned, err := api.sessionService.SetCenter(params.ByName("id"),
		datastructure.NewPoint(request.Lat, request.Lng))
	if err != nil {
		api.NotFoundResponse(w, r, err)
		return
	}

	body := envelope{"data": envelope{"panned": panned}}
	if panned {
		body["data"] = envelope{"panned": true, "instruction": instruction}
	}
	if err := api.writeJSON(w, http.StatusOK, body, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type filterRequest struct {
	Category string `json:"category" validate:"required"`
}

// setFilter godoc
// @Summary		switch the session's category filter; "all" restores every place.
// @Description	switch the session's category filter; "all" restores every place.
// @Tags			session
// @ID set-filter
// @Accept			application/json
// @Produce		application/json
// @Router			/api/sessions/{id}/filter [post]
func (api *discoverAPI) setFilter(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	var request filterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if messages := validateStruct(request); messages != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", messages))
		return
	}

	kept, err := api.sessionService.SetFilter(params.ByName("id"), request.Category)
	if err != nil {
		api.NotFoundResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": envelope{"category": request.Category, "places_kept": kept}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// markers godoc
// @Summary		per-place marker emphasis tier and saved decoration for one session.
// @Description	per-place marker emphasis tier and saved decoration for one session.
// @Tags			session
// @ID markers
// @Produce		application/json
// @Router			/api/sessions/{id}/markers [get]
func (api *discoverAPI) markers(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	results, err := api.sessionService.Markers(params.ByName("id"))
	if err != nil {
		api.NotFoundResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
