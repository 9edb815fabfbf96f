package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/models"
	"github.com/sbilibin2017/gw-forum/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestCodeIssuer_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("stores six-digit code then publishes", func(t *testing.T) {
		mockWriter := services.NewMockEmailCodeWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		var storedCode int
		mockWriter.EXPECT().
			Replace(gomock.Any(), "john@example.com", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, code int, expireAt time.Time) error {
				storedCode = code
				assert.True(t, expireAt.After(time.Now()))
				return nil
			})
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				assert.Equal(t, []byte("john@example.com"), msgs[0].Key)

				var msg models.EmailMessage
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &msg))
				assert.Equal(t, "john@example.com", msg.Recipient)
				assert.Equal(t, "email_confirmation_code", msg.TemplateID)
				assert.Equal(t, "testsite", msg.Context["site_name"])
				return nil
			})

		issuer := services.NewCodeIssuer(mockWriter, mockKafka, "testsite", 5*time.Minute)

		err := issuer.Issue(context.Background(), "john@example.com")
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, storedCode, 100000)
		assert.LessOrEqual(t, storedCode, 999999)
	})

	t.Run("publish failure does not fail issuance", func(t *testing.T) {
		mockWriter := services.NewMockEmailCodeWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		mockWriter.EXPECT().
			Replace(gomock.Any(), "john@example.com", gomock.Any(), gomock.Any()).
			Return(nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		issuer := services.NewCodeIssuer(mockWriter, mockKafka, "testsite", 5*time.Minute)

		err := issuer.Issue(context.Background(), "john@example.com")
		assert.NoError(t, err)
	})

	t.Run("store failure fails issuance", func(t *testing.T) {
		mockWriter := services.NewMockEmailCodeWriter(ctrl)

		mockWriter.EXPECT().
			Replace(gomock.Any(), "john@example.com", gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		issuer := services.NewCodeIssuer(mockWriter, nil, "testsite", 5*time.Minute)

		err := issuer.Issue(context.Background(), "john@example.com")
		assert.Error(t, err)
	})
}

func TestVerificationService_Advance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := "john@example.com"
	liveRow := &models.EmailCodeDB{
		Email:    email,
		Code:     482913,
		ExpireAt: time.Now().Add(4 * time.Minute),
	}
	expiredRow := &models.EmailCodeDB{
		Email:    email,
		Code:     482913,
		ExpireAt: time.Now().Add(-time.Second),
	}
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name              string
		status            string
		submittedCode     *int
		mockSetup         func(reader *services.MockEmailCodeReader, writer *services.MockEmailCodeWriter, issuer *services.MockCodeSender)
		expectCommit      bool
		expectedDirective services.Directive
		expectedErr       error
	}{
		{
			name:   "send issues and redirects to confirm",
			status: services.StatusSend,
			mockSetup: func(reader *services.MockEmailCodeReader, writer *services.MockEmailCodeWriter, issuer *services.MockCodeSender) {
				issuer.EXPECT().Issue(gomock.Any(), email).Return(nil)
			},
			expectedDirective: services.DirectiveRedirectToConfirm,
		},
		{
			name:   "confirm with no code redirects to send",
			status: services.StatusConfirm,
			mockSetup: func(reader *services.MockEmailCodeReader, writer *services.MockEmailCodeWriter, issuer *services.MockCodeSender) {
				reader.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, nil)
			},
			expectedDirective: services.DirectiveRedirectToSend,
		},
		{
			name:   "confirm with expired code redirects to send",
			status: services.StatusConfirm,
			mockSetup: func(reader *services.MockEmailCodeReader, writer *services.MockEmailCodeWriter, issuer *services.MockCodeSender) {
				reader.EXPECT().GetByEmail(gomock.Any(), email).Return(expiredRow, nil)
			},
			expectedDirective: services.DirectiveRedirectToSend,
		},
		{
			name:   "confirm without submission renders form",
			status: services.StatusConfirm,
			mockSetup: func(reader *services.MockEmailCodeReader, writer *services.MockEmailCodeWriter, issuer *services.MockCodeSender) {
				reader.EXPECT().GetByEmail(gomock.Any(), email).Return(liveRow, nil)
			},
			expectedDirective: services.DirectiveRenderForm,
		},
		{
			name:          "wrong code rejected, row untouched",
			status:        services.StatusConfirm,
			submittedCode: intPtr(111111),
			mockSetup: func(reader *services.MockEmailCodeReader, writer *services.MockEmailCodeWriter, issuer *services.MockCodeSender) {
				reader.EXPECT().GetByEmail(gomock.Any(), email).Return(liveRow, nil)
			},
			expectedErr: services.ErrIncorrectCode,
		},
		{
			name:          "matching code commits and deletes",
			status:        services.StatusConfirm,
			submittedCode: intPtr(482913),
			mockSetup: func(reader *services.MockEmailCodeReader, writer *services.MockEmailCodeWriter, issuer *services.MockCodeSender) {
				reader.EXPECT().GetByEmail(gomock.Any(), email).Return(liveRow, nil)
				writer.EXPECT().Delete(gomock.Any(), email).Return(nil)
			},
			expectCommit:      true,
			expectedDirective: services.DirectiveDone,
		},
		{
			name:        "unknown status",
			status:      "resend",
			mockSetup:   func(reader *services.MockEmailCodeReader, writer *services.MockEmailCodeWriter, issuer *services.MockCodeSender) {},
			expectedErr: services.ErrUnknownStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockEmailCodeReader(ctrl)
			mockWriter := services.NewMockEmailCodeWriter(ctrl)
			mockIssuer := services.NewMockCodeSender(ctrl)
			tt.mockSetup(mockReader, mockWriter, mockIssuer)

			svc := services.NewVerificationService(mockReader, mockWriter, mockIssuer)

			committed := false
			commit := func(ctx context.Context) error {
				committed = true
				return nil
			}

			directive, err := svc.Advance(context.Background(), email, tt.status, tt.submittedCode, commit)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedDirective, directive)
			}
			assert.Equal(t, tt.expectCommit, committed)
		})
	}
}

func TestSignupConfirmationService_Advance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	email := "john@example.com"

	t.Run("already confirmed short-circuits", func(t *testing.T) {
		mockUsers := services.NewMockUserReader(ctrl)
		mockUserWriter := services.NewMockUserWriter(ctrl)
		mockReader := services.NewMockEmailCodeReader(ctrl)
		mockWriter := services.NewMockEmailCodeWriter(ctrl)
		mockIssuer := services.NewMockCodeSender(ctrl)

		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{
			UserID:         userID,
			Email:          email,
			EmailConfirmed: true,
		}, nil)

		verification := services.NewVerificationService(mockReader, mockWriter, mockIssuer)
		svc := services.NewSignupConfirmationService(mockUsers, mockUserWriter, verification)

		directive, err := svc.Advance(context.Background(), userID, services.StatusSend, nil)
		assert.NoError(t, err)
		assert.Equal(t, services.DirectiveDone, directive)
	})

	t.Run("matching code sets confirmed flag", func(t *testing.T) {
		mockUsers := services.NewMockUserReader(ctrl)
		mockUserWriter := services.NewMockUserWriter(ctrl)
		mockReader := services.NewMockEmailCodeReader(ctrl)
		mockWriter := services.NewMockEmailCodeWriter(ctrl)
		mockIssuer := services.NewMockCodeSender(ctrl)

		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{
			UserID: userID,
			Email:  email,
		}, nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), email).Return(&models.EmailCodeDB{
			Email:    email,
			Code:     482913,
			ExpireAt: time.Now().Add(time.Minute),
		}, nil)
		mockUserWriter.EXPECT().SetEmailConfirmed(gomock.Any(), userID).Return(nil)
		mockWriter.EXPECT().Delete(gomock.Any(), email).Return(nil)

		verification := services.NewVerificationService(mockReader, mockWriter, mockIssuer)
		svc := services.NewSignupConfirmationService(mockUsers, mockUserWriter, verification)

		code := 482913
		directive, err := svc.Advance(context.Background(), userID, services.StatusConfirm, &code)
		assert.NoError(t, err)
		assert.Equal(t, services.DirectiveDone, directive)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers := services.NewMockUserReader(ctrl)
		mockUserWriter := services.NewMockUserWriter(ctrl)
		mockReader := services.NewMockEmailCodeReader(ctrl)
		mockWriter := services.NewMockEmailCodeWriter(ctrl)
		mockIssuer := services.NewMockCodeSender(ctrl)

		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		verification := services.NewVerificationService(mockReader, mockWriter, mockIssuer)
		svc := services.NewSignupConfirmationService(mockUsers, mockUserWriter, verification)

		_, err := svc.Advance(context.Background(), userID, services.StatusSend, nil)
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
	})
}
