package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/middlewares"
	"github.com/sbilibin2017/gw-forum/internal/services"
)

// AccountDeleter removes a user account after password re-verification.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error
}

// DeleteAccountRequest represents the JSON body for account deletion
// swagger:model DeleteAccountRequest
type DeleteAccountRequest struct {
	// Current password
	// required: true
	Password string `json:"password"`
}

// DeleteAccountErrorResponse represents an error response for account deletion
// swagger:model DeleteAccountErrorResponse
type DeleteAccountErrorResponse struct {
	// Error message
	// default: Incorrect password
	Error string `json:"error"`
}

// NewUserDeleteHandler returns an HTTP handler deleting the caller's
// account. Posts, comments and ratings go with it.
// @Summary Delete own account
// @Tags users
// @Accept json
// @Param deleteAccountRequest body handlers.DeleteAccountRequest true "Current password"
// @Success 204 {string} string "Deleted"
// @Failure 400 {object} handlers.DeleteAccountErrorResponse "Invalid request"
// @Failure 401 {object} handlers.DeleteAccountErrorResponse "Incorrect password"
// @Router /user [delete]
// @Security BearerAuth
func NewUserDeleteHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)

		var req DeleteAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteAccountErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.DeleteAccount(ctx, userID, req.Password); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(DeleteAccountErrorResponse{
					Error: "Incorrect password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteAccountErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
