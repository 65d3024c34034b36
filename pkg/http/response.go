package http

import (
	"encoding/json"
	"net/http"

	apperrors "hoteldesk/pkg/errors"
)

// Response bodies follow the shapes the booking frontend already consumes:
// records and arrays are emitted bare, failures carry at least an "error"
// field, and the delete/room-status routes add a "success" flag.

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type FlaggedErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type DeleteResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DeletedID string `json:"deletedId"`
}

type RoomStatusResponse struct {
	Success     bool     `json:"success"`
	BookedRooms []string `json:"bookedRooms"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already gone, so the caller can only log this.
		return err
	}
	return nil
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.StatusCode(), ErrorResponse{
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}

// WriteFlaggedError is WriteError for routes whose contract includes a
// success boolean alongside the error message.
func WriteFlaggedError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.StatusCode(), FlaggedErrorResponse{
		Success: false,
		Error:   appErr.Message,
	})
}
