package ping

import (
	"context"
	"net/http"

	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"

	"github.com/rs/zerolog"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func HandlerPing(svc Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Ping(r.Context()); err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("storage ping failed")
			httputils.WriteJSONError(w, http.StatusInternalServerError, "storage is unavailable")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{Status: "ok"})
	}
}
