package list_authors

import (
	"context"
	"net/http"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"
)

type Catalog interface {
	ListAuthors(ctx context.Context, skip, limit int) ([]models.Author, error)
}

func HandlerListAuthors(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, err := httputils.QueryInt(r, "skip", 0)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}
		limit, err := httputils.QueryInt(r, "limit", models.DefaultListLimit)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		authors, err := svc.ListAuthors(r.Context(), skip, limit)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.AuthorsResponseFromDomains(authors))
	}
}
