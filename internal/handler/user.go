package handler

import (
	"net/http"

	"github.com/pintag-dev/pintag/internal/api"
	mw "github.com/pintag-dev/pintag/internal/middleware"
	"github.com/pintag-dev/pintag/internal/utils"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body api.CreateUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.user.Register(body.Name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.user.Login(body.Name); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// no token or session; the client stores the name and replays it in
	// X-User-Name on protected endpoints
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Login successful."})
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	if user := mw.GetUserFromContext(r); user == nil {
		utils.WriteErrorAndStatusCode(w, errUnauthenticated())
		return
	}

	users, err := h.user.All()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
