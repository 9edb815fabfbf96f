package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/logger"
)

const sessionCookieName = "session_id"

const sessionIDKey contextKey = "sessionID"

// SessionMiddleware ensures every request carries a session ID cookie
// and stores the ID in the request context.
func SessionMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string

			cookie, err := r.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			} else {
				sessionID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
				})
			}

			ctx := SetSessionIDToContext(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetSessionIDToContext stores the session ID in the context
func SetSessionIDToContext(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionIDFromContext retrieves the session ID from the context.
// Returns "" if not present.
func GetSessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionIDKey).(string)
	return sessionID
}

// FlowStateCleaner purges email-change session state.
type FlowStateCleaner interface {
	SetChangeEmailAccess(ctx context.Context, sessionID string, granted bool) error
	DeleteNewEmail(ctx context.Context, sessionID string) error
}

// FlowStatePurgeMiddleware revokes the email-change capability flags as
// soon as the session navigates anywhere outside the flow's next step.
// The access_change_email flag survives only requests to the new-email
// step; the pending new_email survives only the confirmation step. Once
// purged, only a fresh password verification re-grants access.
func FlowStatePurgeMiddleware(sessions FlowStateCleaner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sessionID := GetSessionIDFromContext(ctx)

			if sessionID != "" {
				path := r.URL.Path

				keepAccess := path == "/email/change/new" || path == "/email/change/verify"
				if !keepAccess {
					if err := sessions.SetChangeEmailAccess(ctx, sessionID, false); err != nil {
						logger.Log.Errorw("failed to purge change-email access", "err", err)
					}
				}

				inConfirmStep := strings.HasPrefix(path, "/email/change/") &&
					(strings.HasSuffix(path, "/send") || strings.HasSuffix(path, "/confirm"))
				keepNewEmail := inConfirmStep || path == "/email/change/new"
				if !keepNewEmail {
					if err := sessions.DeleteNewEmail(ctx, sessionID); err != nil {
						logger.Log.Errorw("failed to purge pending email", "err", err)
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
