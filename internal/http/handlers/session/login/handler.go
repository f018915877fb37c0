package login

import (
	"context"
	"errors"
	"net/http"
	"time"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"
)

//go:generate mockgen -source=handler.go -destination=../../../../mocks/mock_authenticator.go -package=mocks
type Authenticator interface {
	Login(ctx context.Context, login, password string) (string, time.Time, error)
}

// HandlerLogin проверяет учетные данные и кладет токен в куку auth_token
func HandlerLogin(auth Authenticator, cookieSecure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.CredentialsRequest
		if err := httputils.DecodeRequest(w, r, &req); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		token, expiresAt, err := auth.Login(r.Context(), req.Login, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrAuthFailed) {
				httputils.WriteJSONError(w, http.StatusUnauthorized, "incorrect login or password")
				return
			}
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.SetAuthCookie(w, token, cookieSecure)
		httputils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
			Login:     req.Login,
			ExpiresAt: expiresAt.UTC(),
		})
	}
}
