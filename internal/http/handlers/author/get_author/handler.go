package get_author

import (
	"context"
	"net/http"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"

	"github.com/gorilla/mux"
)

type Catalog interface {
	GetAuthor(ctx context.Context, id int64) (models.Author, error)
}

func HandlerGetAuthor(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.PathID(mux.Vars(r)["id"])
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		author, err := svc.GetAuthor(r.Context(), id)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.AuthorResponseFromDomain(author))
	}
}
