package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pintag-dev/pintag/internal/logger"
	"github.com/pintag-dev/pintag/internal/service"
)

type Handler struct {
	user   service.UserService
	image  service.ImageService
	thread service.ThreadService
}

func New(user service.UserService, image service.ImageService, thread service.ThreadService) *Handler {
	return &Handler{user, image, thread}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers already sent; nothing left to do but log
		logger.Log.Error("failed to encode response", "error", err)
	}
}
