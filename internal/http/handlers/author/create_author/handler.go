package create_author

import (
	"context"
	"net/http"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"
)

type Catalog interface {
	CreateAuthor(ctx context.Context, name string) (models.Author, error)
}

func HandlerCreateAuthor(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.AuthorCreateRequest
		if err := httputils.DecodeRequest(w, r, &req); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		author, err := svc.CreateAuthor(r.Context(), req.Name)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.AuthorResponseFromDomain(author))
	}
}
