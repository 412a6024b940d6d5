package handler

import (
	"net/http"

	"github.com/pintag-dev/pintag/internal/api"
	mw "github.com/pintag-dev/pintag/internal/middleware"
	"github.com/pintag-dev/pintag/internal/utils"
)

func (h *Handler) CreateImage(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errUnauthenticated())
		return
	}

	image, err := h.image.Create(user.Name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.CreateImageResponse{Id: image.Id, Url: image.Url})
}

func (h *Handler) GetImages(w http.ResponseWriter, r *http.Request) {
	if user := mw.GetUserFromContext(r); user == nil {
		utils.WriteErrorAndStatusCode(w, errUnauthenticated())
		return
	}

	images, err := h.image.All()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, images)
}
