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

// EmailChanger drives the gated email-change flow.
type EmailChanger interface {
	StartChange(ctx context.Context, sessionID string, userID uuid.UUID, password string) error
	SubmitNewEmail(ctx context.Context, sessionID, newEmail string) error
	Advance(ctx context.Context, sessionID string, userID uuid.UUID, status string, submittedCode *int) (services.Directive, error)
}

// VerifyPasswordRequest represents the JSON body for password re-verification
// swagger:model VerifyPasswordRequest
type VerifyPasswordRequest struct {
	// Current password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewEmailRequest represents the JSON body for the new address
// swagger:model NewEmailRequest
type NewEmailRequest struct {
	// The address to change to
	// required: true
	// default: new@example.com
	NewEmail string `json:"new_email"`
}

// EmailChangeResponse represents a step response of the change flow
// swagger:model EmailChangeResponse
type EmailChangeResponse struct {
	// Human-readable outcome
	// default: Code sent to the new address
	Message string `json:"message"`
}

// EmailChangeErrorResponse represents an error response of the change flow
// swagger:model EmailChangeErrorResponse
type EmailChangeErrorResponse struct {
	// Error message
	// default: User with this email already exists
	Error string `json:"error"`
}

// NewEmailChangeVerifyHandler returns an HTTP handler re-verifying the
// current password, the only step that grants change-email access.
// @Summary Verify password to start an email change
// @Description Compares the submitted password against the stored hash; success grants the session the right to enter a new address.
// @Tags email
// @Accept json
// @Produce json
// @Param verifyPasswordRequest body handlers.VerifyPasswordRequest true "Current password"
// @Success 200 {object} handlers.EmailChangeResponse "Access granted"
// @Failure 401 {object} handlers.EmailChangeErrorResponse "Incorrect password"
// @Router /email/change/verify [post]
// @Security BearerAuth
func NewEmailChangeVerifyHandler(svc EmailChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)
		sessionID := middlewares.GetSessionIDFromContext(ctx)

		var req VerifyPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EmailChangeErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.StartChange(ctx, sessionID, userID, req.Password); err != nil {
			writeEmailChangeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EmailChangeResponse{
			Message: "Password verified, you may enter a new email",
		})
	}
}

// NewEmailChangeNewHandler returns an HTTP handler accepting the pending
// new address and sending a code to it.
// @Summary Submit the new email address
// @Description Requires prior password verification in this session. Stashes the address and sends a confirmation code to it.
// @Tags email
// @Accept json
// @Produce json
// @Param newEmailRequest body handlers.NewEmailRequest true "New address"
// @Success 200 {object} handlers.EmailChangeResponse "Code sent"
// @Failure 400 {object} handlers.EmailChangeErrorResponse "Address already in use"
// @Failure 307 {string} string "Redirect to /email/change/verify when access was not granted"
// @Router /email/change/new [post]
// @Security BearerAuth
func NewEmailChangeNewHandler(svc EmailChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID := middlewares.GetSessionIDFromContext(ctx)

		var req NewEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EmailChangeErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.SubmitNewEmail(ctx, sessionID, req.NewEmail); err != nil {
			writeEmailChangeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EmailChangeResponse{
			Message: "Code sent to the new address",
		})
	}
}

// NewEmailChangeStatusHandler returns an HTTP handler entering the
// change confirmation flow at the given status.
// @Summary Enter the email change confirmation flow
// @Description With status=send re-issues a code to the pending address. With status=confirm and no live code redirects to send; otherwise prompts for the code.
// @Tags email
// @Produce json
// @Param status path string true "Flow status" Enums(send, confirm)
// @Success 200 {object} handlers.ConfirmResponse
// @Failure 307 {string} string "Redirect to /email/change/verify when no pending address exists"
// @Failure 404 {string} string "Unknown status"
// @Router /email/change/{status} [get]
// @Security BearerAuth
func NewEmailChangeStatusHandler(svc EmailChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)
		sessionID := middlewares.GetSessionIDFromContext(ctx)
		status := chi.URLParam(r, "status")

		directive, err := svc.Advance(ctx, sessionID, userID, status, nil)
		if err != nil {
			writeEmailChangeError(w, r, err)
			return
		}

		writeDirective(w, r, directive, "/email/change", "Email successfully changed")
	}
}

// NewEmailChangeConfirmHandler returns an HTTP handler checking the
// submitted code and committing the change.
// @Summary Submit the email change code
// @Description A matching code overwrites the user's email with the pending address, re-validating that it is still unused.
// @Tags email
// @Accept json
// @Produce json
// @Param confirmCodeRequest body handlers.ConfirmCodeRequest true "Code submission"
// @Success 200 {object} handlers.ConfirmResponse "Email successfully changed"
// @Failure 400 {object} handlers.ConfirmErrorResponse "Incorrect code / address taken"
// @Router /email/change/confirm [post]
// @Security BearerAuth
func NewEmailChangeConfirmHandler(svc EmailChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.GetUserIDFromContext(ctx)
		sessionID := middlewares.GetSessionIDFromContext(ctx)

		var req ConfirmCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConfirmErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		directive, err := svc.Advance(ctx, sessionID, userID, services.StatusConfirm, &req.Code)
		if err != nil {
			writeEmailChangeError(w, r, err)
			return
		}

		writeDirective(w, r, directive, "/email/change", "Email successfully changed")
	}
}

// writeEmailChangeError maps change-flow errors to HTTP responses. Stale
// flow state is never a hard error: the caller is steered back to the
// flow's entry step.
func writeEmailChangeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrStaleFlowState):
		http.Redirect(w, r, "/email/change/verify", http.StatusTemporaryRedirect)
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUserDoesNotExist):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(EmailChangeErrorResponse{
			Error: "Incorrect password",
		})
	case errors.Is(err, services.ErrEmailTaken):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(EmailChangeErrorResponse{
			Error: "User with this email already exists",
		})
	case errors.Is(err, services.ErrIncorrectCode):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ConfirmErrorResponse{
			Error: "Incorrect code",
		})
	case errors.Is(err, services.ErrUnknownStatus):
		w.WriteHeader(http.StatusNotFound)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(EmailChangeErrorResponse{
			Error: "Internal server error",
		})
	}
}
