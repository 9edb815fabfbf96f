package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/middlewares"
	"github.com/sbilibin2017/gw-forum/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestEmailChangeVerifyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         interface{}
		mockSetup    func(m *MockEmailChanger)
		expectedCode int
	}{
		{
			name: "correct password grants access",
			body: VerifyPasswordRequest{Password: "secret"},
			mockSetup: func(m *MockEmailChanger) {
				m.EXPECT().
					StartChange(gomock.Any(), "sess-1", userID, "secret").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "wrong password",
			body: VerifyPasswordRequest{Password: "wrong"},
			mockSetup: func(m *MockEmailChanger) {
				m.EXPECT().
					StartChange(gomock.Any(), "sess-1", userID, "wrong").
					Return(services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			mockSetup:    func(m *MockEmailChanger) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEmailChanger(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewEmailChangeVerifyHandler(mockSvc)

			var body *bytes.Buffer
			if raw, ok := tt.body.(string); ok {
				body = bytes.NewBufferString(raw)
			} else {
				b, _ := json.Marshal(tt.body)
				body = bytes.NewBuffer(b)
			}

			req := httptest.NewRequest(http.MethodPost, "/email/change/verify", body)
			ctx := contextWithUserID(req.Context(), userID)
			ctx = middlewares.SetSessionIDToContext(ctx, "sess-1")
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestEmailChangeNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name             string
		mockSetup        func(m *MockEmailChanger)
		expectedCode     int
		expectedLocation string
	}{
		{
			name: "accepted, code sent",
			mockSetup: func(m *MockEmailChanger) {
				m.EXPECT().
					SubmitNewEmail(gomock.Any(), "sess-1", "new@example.com").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "no access redirects to verify",
			mockSetup: func(m *MockEmailChanger) {
				m.EXPECT().
					SubmitNewEmail(gomock.Any(), "sess-1", "new@example.com").
					Return(services.ErrStaleFlowState)
			},
			expectedCode:     http.StatusTemporaryRedirect,
			expectedLocation: "/email/change/verify",
		},
		{
			name: "address taken",
			mockSetup: func(m *MockEmailChanger) {
				m.EXPECT().
					SubmitNewEmail(gomock.Any(), "sess-1", "new@example.com").
					Return(services.ErrEmailTaken)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEmailChanger(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewEmailChangeNewHandler(mockSvc)

			b, _ := json.Marshal(NewEmailRequest{NewEmail: "new@example.com"})
			req := httptest.NewRequest(http.MethodPost, "/email/change/new", bytes.NewBuffer(b))
			ctx := contextWithUserID(req.Context(), userID)
			ctx = middlewares.SetSessionIDToContext(ctx, "sess-1")
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			}
		})
	}
}

func TestEmailChangeConfirmHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	code := 482913

	tests := []struct {
		name             string
		mockSetup        func(m *MockEmailChanger)
		expectedCode     int
		expectedLocation string
		expectedBody     map[string]string
	}{
		{
			name: "matching code changes email",
			mockSetup: func(m *MockEmailChanger) {
				m.EXPECT().
					Advance(gomock.Any(), "sess-1", userID, services.StatusConfirm, &code).
					Return(services.DirectiveDone, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "Email successfully changed"},
		},
		{
			name: "wrong code",
			mockSetup: func(m *MockEmailChanger) {
				m.EXPECT().
					Advance(gomock.Any(), "sess-1", userID, services.StatusConfirm, &code).
					Return(services.Directive(0), services.ErrIncorrectCode)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Incorrect code"},
		},
		{
			name: "stale flow redirects to verify",
			mockSetup: func(m *MockEmailChanger) {
				m.EXPECT().
					Advance(gomock.Any(), "sess-1", userID, services.StatusConfirm, &code).
					Return(services.Directive(0), services.ErrStaleFlowState)
			},
			expectedCode:     http.StatusTemporaryRedirect,
			expectedLocation: "/email/change/verify",
		},
		{
			name: "expired code redirects to send",
			mockSetup: func(m *MockEmailChanger) {
				m.EXPECT().
					Advance(gomock.Any(), "sess-1", userID, services.StatusConfirm, &code).
					Return(services.DirectiveRedirectToSend, nil)
			},
			expectedCode:     http.StatusTemporaryRedirect,
			expectedLocation: "/email/change/send",
		},
		{
			name: "pending address got registered meanwhile",
			mockSetup: func(m *MockEmailChanger) {
				m.EXPECT().
					Advance(gomock.Any(), "sess-1", userID, services.StatusConfirm, &code).
					Return(services.Directive(0), services.ErrEmailTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "User with this email already exists"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEmailChanger(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewEmailChangeConfirmHandler(mockSvc)

			b, _ := json.Marshal(ConfirmCodeRequest{Code: code})
			req := httptest.NewRequest(http.MethodPost, "/email/change/confirm", bytes.NewBuffer(b))
			ctx := contextWithUserID(req.Context(), userID)
			ctx = middlewares.SetSessionIDToContext(ctx, "sess-1")
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			}
			if tt.expectedBody != nil {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
		})
	}
}
