package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// Error codes of the JSON API. The first two are bare strings the existing
// front end matches on.
const (
	CodeDBNotConfigured = "DB_NOT_CONFIGURED"
	CodeInternal        = "Internal Server Error"
	CodeBadRequest      = "BAD_REQUEST"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
)

// APIErrorDetail represents a single error in the standardized error response.
type APIErrorDetail struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// APIErrorResponse represents the standardized error response body.
type APIErrorResponse struct {
	Error  string           `json:"error"`
	Errors []APIErrorDetail `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			zap.L().Warn("error encoding JSON response", zap.Error(err))
		}
	}
}

// WriteAPIError writes an error body whose "error" member is code, the shape
// the front end checks, plus a detail entry when detail is not empty.
func WriteAPIError(w http.ResponseWriter, httpStatus int, code string, detail string) {
	resp := APIErrorResponse{Error: code}
	if detail != "" {
		resp.Errors = []APIErrorDetail{
			{
				Code:   code,
				Status: strconv.Itoa(httpStatus),
				Detail: detail,
			},
		}
	}
	writeJSON(w, httpStatus, resp)
}
