package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ecowear-be/internal/apperr"
	"ecowear-be/internal/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Response is the JSON envelope used by every endpoint.
type Response struct {
	Data  interface{}    `json:"data,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
}

// ErrorResponse carries a machine-checkable code plus a human message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = validator.New()

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps an error to its status code and envelope. Internal errors
// are logged with their cause; the cause never reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)

	if status == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("internal error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	WriteJSON(w, status, Response{
		Error: &ErrorResponse{
			Code:    string(apperr.KindOf(err)),
			Message: apperr.Message(err),
		},
	})
}

// decodeAndValidate decodes the JSON body into v and runs struct validation.
// Any failure comes back as a Validation error ready for WriteError.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("invalid request body: " + err.Error())
	}

	if err := validate.Struct(v); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fe.Field())
			}
			return apperr.Validation("invalid fields: " + strings.Join(fields, ", "))
		}
		return apperr.Validation(err.Error())
	}

	return nil
}
