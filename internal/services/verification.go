package services

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	ErrIncorrectCode = errors.New("incorrect code")
	ErrUnknownStatus = errors.New("unknown verification status")
)

// Flow statuses accepted in the /email/{status} path segment.
const (
	StatusSend    = "send"
	StatusConfirm = "confirm"
)

// Directive tells the caller what to do next after driving the
// verification machine one step.
type Directive int

const (
	DirectiveRedirectToSend    Directive = iota // no live code: go issue one
	DirectiveRedirectToConfirm                  // code issued: go enter it
	DirectiveRenderForm                         // live code present, awaiting input
	DirectiveDone                               // commit performed, flow finished
)

// EmailCodeReader defines read operations for verification codes.
type EmailCodeReader interface {
	GetByEmail(ctx context.Context, email string) (*models.EmailCodeDB, error)
}

// EmailCodeWriter defines write operations for verification codes.
type EmailCodeWriter interface {
	Replace(ctx context.Context, email string, code int, expireAt time.Time) error
	Delete(ctx context.Context, email string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CodeIssuer generates verification codes and dispatches them by email.
// The site name is injected here so nothing reaches for process-wide
// site configuration at send time.
type CodeIssuer struct {
	writer      EmailCodeWriter
	kafkaWriter KafkaWriter
	siteName    string
	codeTTL     time.Duration
}

// NewCodeIssuer creates a new CodeIssuer.
func NewCodeIssuer(writer EmailCodeWriter, kafkaWriter KafkaWriter, siteName string, codeTTL time.Duration) *CodeIssuer {
	return &CodeIssuer{
		writer:      writer,
		kafkaWriter: kafkaWriter,
		siteName:    siteName,
		codeTTL:     codeTTL,
	}
}

// Issue replaces any previous code for the email with a fresh 6-digit one
// and enqueues the notification email. The code row is persisted before
// the message is published, so a confirmation attempt racing ahead of
// delivery still finds a code to check against. Publish failures are
// logged and swallowed: issuance succeeds locally regardless.
func (s *CodeIssuer) Issue(ctx context.Context, email string) error {
	code := rand.IntN(900000) + 100000
	expireAt := time.Now().Add(s.codeTTL)

	if err := s.writer.Replace(ctx, email, code, expireAt); err != nil {
		logger.Log.Errorw("failed to store verification code", "email", email, "err", err)
		return err
	}

	s.publishEmail(ctx, models.EmailMessage{
		Subject:    "Code for email confirmation",
		TemplateID: "email_confirmation_code",
		Recipient:  email,
		Context: map[string]string{
			"site_name": s.siteName,
			"code":      strconv.Itoa(code),
		},
	})

	return nil
}

// publishEmail hands the message to Kafka, fire-and-forget.
func (s *CodeIssuer) publishEmail(ctx context.Context, msg models.EmailMessage) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping email dispatch", "recipient", msg.Recipient)
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("failed to marshal email message", "recipient", msg.Recipient, "error", err)
		return
	}

	kafkaMsg := kafka.Message{
		Key:   []byte(msg.Recipient),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, kafkaMsg); err != nil {
		logger.Log.Errorw("failed to publish email message", "recipient", msg.Recipient, "error", err)
	} else {
		logger.Log.Infow("email message published", "recipient", msg.Recipient, "template", msg.TemplateID)
	}
}

// CommitFunc performs the terminal action of a verification flow once the
// submitted code matches: setting the confirmed flag, or overwriting the
// user's email.
type CommitFunc func(ctx context.Context) error

// VerificationService drives the send -> await -> confirm -> commit
// machine shared by signup confirmation and email-change confirmation.
// The two call sites differ only in subject email and commit action.
type VerificationService struct {
	reader EmailCodeReader
	writer EmailCodeWriter
	issuer CodeSender
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(reader EmailCodeReader, writer EmailCodeWriter, issuer CodeSender) *VerificationService {
	return &VerificationService{
		reader: reader,
		writer: writer,
		issuer: issuer,
	}
}

// Advance moves the machine one step for the subject email.
//
// status=send issues a code and directs the caller to the confirm entry.
// status=confirm with no live code (absent or expired) self-heals by
// directing back to send. With a live code and no submission it asks for
// input; with a submission it either rejects (ErrIncorrectCode, code row
// untouched) or runs commit, deletes the code and finishes.
func (svc *VerificationService) Advance(ctx context.Context, email, status string, submittedCode *int, commit CommitFunc) (Directive, error) {
	switch status {
	case StatusSend:
		if err := svc.issuer.Issue(ctx, email); err != nil {
			return 0, err
		}
		return DirectiveRedirectToConfirm, nil

	case StatusConfirm:
		row, err := svc.reader.GetByEmail(ctx, email)
		if err != nil {
			logger.Log.Errorw("failed to read verification code", "email", email, "err", err)
			return 0, err
		}
		// An expired-but-unswept code counts as absent; the sweep job is
		// cleanup, not the source of truth.
		if row == nil || time.Now().After(row.ExpireAt) {
			return DirectiveRedirectToSend, nil
		}

		if submittedCode == nil {
			return DirectiveRenderForm, nil
		}

		if *submittedCode != row.Code {
			return 0, ErrIncorrectCode
		}

		if err := commit(ctx); err != nil {
			return 0, err
		}

		if err := svc.writer.Delete(ctx, email); err != nil {
			logger.Log.Errorw("failed to delete confirmed code", "email", email, "err", err)
			return 0, err
		}

		return DirectiveDone, nil

	default:
		return 0, ErrUnknownStatus
	}
}

// SignupConfirmationService binds the verification machine to the initial
// signup flow: the subject is the authenticated user's own address and
// the commit sets email_confirmed.
type SignupConfirmationService struct {
	users        UserReader
	userWriter   UserWriter
	verification *VerificationService
}

// NewSignupConfirmationService creates a new SignupConfirmationService.
func NewSignupConfirmationService(users UserReader, userWriter UserWriter, verification *VerificationService) *SignupConfirmationService {
	return &SignupConfirmationService{
		users:        users,
		userWriter:   userWriter,
		verification: verification,
	}
}

// Advance drives the signup confirmation flow for the user. An already
// confirmed user short-circuits to DirectiveDone whatever the status.
func (svc *SignupConfirmationService) Advance(ctx context.Context, userID uuid.UUID, status string, submittedCode *int) (Directive, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return 0, err
	}
	if user == nil {
		return 0, ErrUserDoesNotExist
	}

	if user.EmailConfirmed {
		return DirectiveDone, nil
	}

	commit := func(ctx context.Context) error {
		return svc.userWriter.SetEmailConfirmed(ctx, userID)
	}

	return svc.verification.Advance(ctx, user.Email, status, submittedCode, commit)
}
