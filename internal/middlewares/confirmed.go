package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/models"
)

// UserGetter fetches a user by ID.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// EmailConfirmedMiddleware blocks authenticated users whose email is not
// yet confirmed, pointing them at the confirmation flow. Routes of the
// confirmation surface itself must not sit behind this middleware.
func EmailConfirmedMiddleware(users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID := GetUserIDFromContext(ctx)
			if userID == uuid.Nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(ctx, userID)
			if err != nil {
				logger.Log.Errorw("failed to load user", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if !user.EmailConfirmed {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{
					"error":    "email not confirmed",
					"redirect": "/email/confirm",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
