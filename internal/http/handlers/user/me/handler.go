package me

import (
	"net/http"

	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/handlers/middlewares/auth"
	"librarycatalog/internal/http/httputils"
)

func HandlerMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.UserResponseFromDomain(user))
	}
}
