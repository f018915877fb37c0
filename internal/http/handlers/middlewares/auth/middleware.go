package auth

import (
	"context"
	"errors"
	"net/http"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ctxKey int

const userKey ctxKey = iota

//go:generate mockgen -source=middleware.go -destination=../../../../mocks/mock_user_resolver.go -package=mocks
type UserResolver interface {
	ResolveCurrentUser(ctx context.Context, token string) (models.User, error)
}

// UserFromContext возвращает пользователя, проверенного MiddlewareAuth
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// MiddlewareAuth пропускает дальше только запросы с валидным токеном (кука или Bearer).
// Любая проблема с токеном - 401 без подробностей.
func MiddlewareAuth(auth UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := httputils.TokenFromRequest(r)
			if token == "" {
				httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			user, err := auth.ResolveCurrentUser(ctx, token)
			if err != nil {
				if errors.Is(err, models.ErrAuthFailed) {
					httputils.WriteJSONError(w, http.StatusUnauthorized, "could not validate credentials")
					return
				}
				zerolog.Ctx(ctx).Error().Err(err).Msg("failed to resolve current user")
				httputils.WriteJSONError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}
