package list_author_books

import (
	"context"
	"net/http"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"

	"github.com/gorilla/mux"
)

type Catalog interface {
	ListBooksByAuthor(ctx context.Context, authorID int64) ([]models.Book, error)
}

func HandlerListAuthorBooks(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.PathID(mux.Vars(r)["id"])
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		books, err := svc.ListBooksByAuthor(r.Context(), id)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.BooksResponseFromDomains(books))
	}
}
