package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/models"
	"github.com/sbilibin2017/gw-forum/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCommentListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postID := uuid.New()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockCommentManager)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "success",
			path: "/post/" + postID.String() + "/comments",
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().ListComments(gomock.Any(), postID, 20, 0).
					Return([]models.CommentDB{
						{CommentID: uuid.New(), PostID: postID, Text: "first"},
						{CommentID: uuid.New(), PostID: postID, Text: "second"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "pagination forwarded",
			path: "/post/" + postID.String() + "/comments?limit=5&offset=10",
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().ListComments(gomock.Any(), postID, 5, 10).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unknown post",
			path: "/post/" + postID.String() + "/comments",
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().ListComments(gomock.Any(), postID, 20, 0).
					Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			path:         "/post/not-a-uuid/comments",
			mockSetup:    func(m *MockCommentManager) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCommentManager(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/post/{id}/comments", NewCommentListHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLen > 0 {
				var got []models.CommentDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Len(t, got, tt.expectedLen)
			}
		})
	}
}

func TestCommentCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postID := uuid.New()
	userID := uuid.New()
	commentID := uuid.New()

	tests := []struct {
		name         string
		path         string
		body         string
		mockSetup    func(m *MockCommentManager)
		expectedCode int
	}{
		{
			name: "created",
			path: "/post/" + postID.String() + "/comment",
			body: `{"text":"Nice post!"}`,
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().CreateComment(gomock.Any(), postID, userID, "Nice post!").
					Return(commentID, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "unknown post",
			path: "/post/" + postID.String() + "/comment",
			body: `{"text":"Nice post!"}`,
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().CreateComment(gomock.Any(), postID, userID, "Nice post!").
					Return(uuid.Nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "empty text",
			path:         "/post/" + postID.String() + "/comment",
			body:         `{"text":""}`,
			mockSetup:    func(m *MockCommentManager) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "text too long",
			path:         "/post/" + postID.String() + "/comment",
			body:         `{"text":"` + strings.Repeat("a", maxCommentLength+1) + `"}`,
			mockSetup:    func(m *MockCommentManager) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid body",
			path:         "/post/" + postID.String() + "/comment",
			body:         `{invalid`,
			mockSetup:    func(m *MockCommentManager) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed post id",
			path:         "/post/not-a-uuid/comment",
			body:         `{"text":"Nice post!"}`,
			mockSetup:    func(m *MockCommentManager) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCommentManager(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Post("/post/{id}/comment", NewCommentCreateHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req = req.WithContext(contextWithUserID(req.Context(), userID))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp CreateCommentResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, commentID, resp.ID)
			}
		})
	}
}

func TestCommentUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commentID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockCommentManager)
		expectedCode int
	}{
		{
			name: "updated",
			body: `{"text":"edited"}`,
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().UpdateComment(gomock.Any(), commentID, userID, "edited").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not the author",
			body: `{"text":"edited"}`,
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().UpdateComment(gomock.Any(), commentID, userID, "edited").
					Return(services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "unknown comment",
			body: `{"text":"edited"}`,
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().UpdateComment(gomock.Any(), commentID, userID, "edited").
					Return(services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "empty text",
			body:         `{"text":""}`,
			mockSetup:    func(m *MockCommentManager) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCommentManager(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Put("/comment/{id}", NewCommentUpdateHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPut, "/comment/"+commentID.String(), bytes.NewBufferString(tt.body))
			req = req.WithContext(contextWithUserID(req.Context(), userID))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCommentDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commentID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockCommentManager)
		expectedCode int
	}{
		{
			name: "deleted",
			path: "/comment/" + commentID.String(),
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().DeleteComment(gomock.Any(), commentID, userID).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "not the author",
			path: "/comment/" + commentID.String(),
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().DeleteComment(gomock.Any(), commentID, userID).
					Return(services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "malformed id",
			path:         "/comment/not-a-uuid",
			mockSetup:    func(m *MockCommentManager) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCommentManager(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Delete("/comment/{id}", NewCommentDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			req = req.WithContext(contextWithUserID(req.Context(), userID))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
