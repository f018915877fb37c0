package logout

import (
	"net/http"

	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"
)

// HandlerLogout только стирает куку: отзыва токенов нет, выданный JWT живет до exp
func HandlerLogout(cookieSecure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputils.ClearAuthCookie(w, cookieSecure)
		httputils.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{Status: "logged out"})
	}
}
