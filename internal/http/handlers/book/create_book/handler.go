package create_book

import (
	"context"
	"net/http"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=handler.go -destination=../../../../mocks/mock_book_creator.go -package=mocks
type BookCreator interface {
	CreateBook(ctx context.Context, title string, pages int, authorID int64) (models.Book, error)
}

// HandlerCreateBook: автор берется из пути /authors/{id}/books/
func HandlerCreateBook(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := httputils.PathID(mux.Vars(r)["id"])
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		var req dto.BookCreateRequest
		if err := httputils.DecodeRequest(w, r, &req); err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		book, err := svc.CreateBook(r.Context(), req.Title, req.Pages, authorID)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.BookResponseFromDomain(book))
	}
}
