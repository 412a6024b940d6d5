package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pintag-dev/pintag/internal/api"
	"github.com/pintag-dev/pintag/internal/domain"
	mw "github.com/pintag-dev/pintag/internal/middleware"
	"github.com/pintag-dev/pintag/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errUnauthenticated())
		return
	}

	imageId := chi.URLParam(r, "imageId")

	var body api.CreateThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(domain.ThreadCreationData{
		ImageId:   imageId,
		X:         body.X,
		Y:         body.Y,
		Comment:   body.Comment,
		CreatedBy: user.Name,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, thread)
}

func (h *Handler) GetThreadsForImage(w http.ResponseWriter, r *http.Request) {
	if user := mw.GetUserFromContext(r); user == nil {
		utils.WriteErrorAndStatusCode(w, errUnauthenticated())
		return
	}

	threads, err := h.thread.ForImage(chi.URLParam(r, "imageId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, threads)
}

func (h *Handler) UpdateThreadPosition(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errUnauthenticated())
		return
	}

	var body api.UpdateThreadPositionRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.UpdatePosition(chi.URLParam(r, "threadId"), body.X, body.Y, user.Name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, thread)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errUnauthenticated())
		return
	}

	if err := h.thread.Delete(chi.URLParam(r, "threadId"), user.Name); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
