package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/logger"
)

var (
	ErrEmailTaken     = errors.New("user with this email already exists")
	ErrStaleFlowState = errors.New("email change flow state is missing")
)

// SessionStore holds the ephemeral capability flags of the email-change
// flow. Only this service's transitions may set them.
type SessionStore interface {
	SetChangeEmailAccess(ctx context.Context, sessionID string, granted bool) error
	GetChangeEmailAccess(ctx context.Context, sessionID string) (bool, error)
	SetNewEmail(ctx context.Context, sessionID, email string) error
	GetNewEmail(ctx context.Context, sessionID string) (string, error)
	DeleteNewEmail(ctx context.Context, sessionID string) error
}

// PasswordVerifier re-verifies the current password of a user.
type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, userID uuid.UUID, password string) error
}

// EmailChangeService gates and drives the three-step email change:
// password re-verification -> new address entry -> code confirmation.
type EmailChangeService struct {
	users        UserReader
	userWriter   UserWriter
	sessions     SessionStore
	passwords    PasswordVerifier
	issuer       CodeSender
	verification *VerificationService
}

// NewEmailChangeService creates a new EmailChangeService.
func NewEmailChangeService(
	users UserReader,
	userWriter UserWriter,
	sessions SessionStore,
	passwords PasswordVerifier,
	issuer CodeSender,
	verification *VerificationService,
) *EmailChangeService {
	return &EmailChangeService{
		users:        users,
		userWriter:   userWriter,
		sessions:     sessions,
		passwords:    passwords,
		issuer:       issuer,
		verification: verification,
	}
}

// StartChange verifies the current password and, only on success, grants
// the access_change_email capability for the session.
func (svc *EmailChangeService) StartChange(ctx context.Context, sessionID string, userID uuid.UUID, password string) error {
	if err := svc.passwords.VerifyPassword(ctx, userID, password); err != nil {
		return err
	}

	if err := svc.sessions.SetChangeEmailAccess(ctx, sessionID, true); err != nil {
		logger.Log.Errorw("failed to grant change-email access", "err", err)
		return err
	}

	return nil
}

// SubmitNewEmail accepts the pending address: requires the capability,
// rejects addresses already in use, stashes the address in the session
// and issues a code to it. The capability is consumed here; only a fresh
// password verification re-grants it.
func (svc *EmailChangeService) SubmitNewEmail(ctx context.Context, sessionID, newEmail string) error {
	granted, err := svc.sessions.GetChangeEmailAccess(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to read change-email access", "err", err)
		return err
	}
	if !granted {
		return ErrStaleFlowState
	}

	existing, err := svc.users.GetByUsernameOrEmail(ctx, nil, &newEmail)
	if err != nil {
		logger.Log.Errorw("failed to check email in use", "err", err)
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	if err := svc.sessions.SetNewEmail(ctx, sessionID, newEmail); err != nil {
		logger.Log.Errorw("failed to stash new email", "err", err)
		return err
	}
	if err := svc.sessions.SetChangeEmailAccess(ctx, sessionID, false); err != nil {
		logger.Log.Errorw("failed to clear change-email access", "err", err)
		return err
	}

	return svc.issuer.Issue(ctx, newEmail)
}

// Advance drives the confirmation step against the pending address. The
// commit re-validates that the address is still unused: a registration
// racing between SubmitNewEmail and confirmation aborts the commit with
// ErrEmailTaken, no reconciliation is attempted. On success the user's
// email is overwritten and the session state purged.
func (svc *EmailChangeService) Advance(ctx context.Context, sessionID string, userID uuid.UUID, status string, submittedCode *int) (Directive, error) {
	newEmail, err := svc.sessions.GetNewEmail(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to read pending email", "err", err)
		return 0, err
	}
	if newEmail == "" {
		return 0, ErrStaleFlowState
	}

	commit := func(ctx context.Context) error {
		existing, err := svc.users.GetByUsernameOrEmail(ctx, nil, &newEmail)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}
		return svc.userWriter.UpdateEmail(ctx, userID, newEmail)
	}

	directive, err := svc.verification.Advance(ctx, newEmail, status, submittedCode, commit)
	if err != nil {
		return 0, err
	}

	if directive == DirectiveDone {
		if err := svc.sessions.DeleteNewEmail(ctx, sessionID); err != nil {
			logger.Log.Errorw("failed to purge pending email", "err", err)
		}
		if err := svc.sessions.SetChangeEmailAccess(ctx, sessionID, false); err != nil {
			logger.Log.Errorw("failed to clear change-email access", "err", err)
		}
		logger.Log.Infow("email successfully changed", "user_id", userID)
	}

	return directive, nil
}
