package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pintag-dev/pintag/internal/errors"
	"github.com/pintag-dev/pintag/internal/logger"
)

type errorResponse struct {
	Message string `json:"message"`
}

// WriteErrorAndStatusCode maps an error to its HTTP status and writes the
// standard {"message": ...} JSON body. Errors without a status code are 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		statusCode = e.StatusCode
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encodeErr := json.NewEncoder(w).Encode(errorResponse{Message: err.Error()}); encodeErr != nil {
		logger.Log.Error("failed to encode error response", "error", encodeErr)
	}
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("body decode failed", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("body decode failed", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("body validation failed", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}
