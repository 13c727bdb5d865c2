package controllers

import (
	"net/http"

	"go.uber.org/zap"
)

func (api *discoverAPI) logError(r *http.Request, err error) {
	api.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
		zap.Error(err),
	)
}

func (api *discoverAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int,
	message string) {
	body := envelope{"error": envelope{
		"code":    http.StatusText(status),
		"message": message,
	}}

	if err := api.writeJSON(w, status, body, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *discoverAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *discoverAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (api *discoverAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponse(w, r, http.StatusInternalServerError,
		"the server encountered a problem and could not process your request")
}
