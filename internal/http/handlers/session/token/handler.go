package token

import (
	"context"
	"errors"
	"net/http"
	"time"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"
)

const tokenTypeBearer = "bearer"

type Authenticator interface {
	Login(ctx context.Context, login, password string) (string, time.Time, error)
}

// HandlerToken - OAuth2 password flow: тот же логин, но токен отдается в теле, без куки
func HandlerToken(auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.CredentialsRequest
		if err := httputils.DecodeRequest(w, r, &req); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		token, _, err := auth.Login(r.Context(), req.Login, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrAuthFailed) {
				w.Header().Set("WWW-Authenticate", "Bearer")
				httputils.WriteJSONError(w, http.StatusUnauthorized, "incorrect login or password")
				return
			}
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{
			AccessToken: token,
			TokenType:   tokenTypeBearer,
		})
	}
}
