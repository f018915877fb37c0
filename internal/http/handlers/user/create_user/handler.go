package create_user

import (
	"context"
	"net/http"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"
)

type Registrar interface {
	Register(ctx context.Context, login, password, rights string) (models.User, error)
}

func HandlerCreateUser(svc Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.UserCreateRequest
		if err := httputils.DecodeRequest(w, r, &req); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		user, err := svc.Register(r.Context(), req.Login, req.Password, models.RightsUser)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.UserResponseFromDomain(user))
	}
}
