package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/middlewares"
	"github.com/sbilibin2017/gw-forum/internal/services"
)

// SignupConfirmer drives the signup email confirmation flow.
type SignupConfirmer interface {
	Advance(ctx context.Context, userID uuid.UUID, status string, submittedCode *int) (services.Directive, error)
}

// ConfirmCodeRequest represents the JSON body for code submission
// swagger:model ConfirmCodeRequest
type ConfirmCodeRequest struct {
	// 6-digit confirmation code
	// required: true
	// default: 482913
	Code int `json:"code"`
}

// ConfirmResponse represents a verification flow response
// swagger:model ConfirmResponse
type ConfirmResponse struct {
	// Human-readable outcome
	// default: Email confirmed
	Message string `json:"message"`
}

// ConfirmErrorResponse represents an error response for confirmation
// swagger:model ConfirmErrorResponse
type ConfirmErrorResponse struct {
	// Error message
	// default: Incorrect code
	Error string `json:"error"`
}

// writeDirective renders a machine directive as an HTTP response with
// redirects rooted at base (e.g. "/email" or "/email/change").
func writeDirective(w http.ResponseWriter, r *http.Request, directive services.Directive, base, doneMessage string) {
	switch directive {
	case services.DirectiveRedirectToSend:
		http.Redirect(w, r, base+"/send", http.StatusTemporaryRedirect)
	case services.DirectiveRedirectToConfirm:
		http.Redirect(w, r, base+"/confirm", http.StatusTemporaryRedirect)
	case services.DirectiveRenderForm:
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConfirmResponse{
			Message: "Enter the code sent to your email",
		})
	case services.DirectiveDone:
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConfirmResponse{
			Message: doneMessage,
		})
	}
}

// NewEmailStatusHandler returns an HTTP handler entering the signup
// confirmation flow at the given status.
// @Summary Enter the email confirmation flow
// @Description With status=send issues a fresh code and redirects to confirm. With status=confirm and no live code redirects to send; otherwise prompts for the code. Already-confirmed users get a neutral success whatever the status.
// @Tags email
// @Produce json
// @Param status path string true "Flow status" Enums(send, confirm)
// @Success 200 {object} handlers.ConfirmResponse
// @Failure 404 {string} string "Unknown status"
// @Router /email/{status} [get]
// @Security BearerAuth
func NewEmailStatusHandler(svc SignupConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())
		status := chi.URLParam(r, "status")

		directive, err := svc.Advance(r.Context(), userID, status, nil)
		if err != nil {
			writeConfirmError(w, err)
			return
		}

		writeDirective(w, r, directive, "/email", "Email confirmed")
	}
}

// NewEmailConfirmHandler returns an HTTP handler checking a submitted
// signup confirmation code.
// @Summary Submit the email confirmation code
// @Description Compares the submitted code against the stored one; a match sets email_confirmed and deletes the code.
// @Tags email
// @Accept json
// @Produce json
// @Param confirmCodeRequest body handlers.ConfirmCodeRequest true "Code submission"
// @Success 200 {object} handlers.ConfirmResponse "Email confirmed"
// @Failure 400 {object} handlers.ConfirmErrorResponse "Incorrect code"
// @Router /email/confirm [post]
// @Security BearerAuth
func NewEmailConfirmHandler(svc SignupConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		var req ConfirmCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConfirmErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		directive, err := svc.Advance(r.Context(), userID, services.StatusConfirm, &req.Code)
		if err != nil {
			writeConfirmError(w, err)
			return
		}

		writeDirective(w, r, directive, "/email", "Email confirmed")
	}
}

// writeConfirmError maps verification flow errors to HTTP responses.
func writeConfirmError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrIncorrectCode):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ConfirmErrorResponse{
			Error: "Incorrect code",
		})
	case errors.Is(err, services.ErrUnknownStatus):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, services.ErrEmailTaken):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ConfirmErrorResponse{
			Error: "User with this email already exists",
		})
	case errors.Is(err, services.ErrUserDoesNotExist):
		w.WriteHeader(http.StatusUnauthorized)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ConfirmErrorResponse{
			Error: "Internal server error",
		})
	}
}
