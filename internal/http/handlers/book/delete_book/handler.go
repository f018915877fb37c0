package delete_book

import (
	"context"
	"fmt"
	"net/http"

	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"

	"github.com/gorilla/mux"
)

type Catalog interface {
	DeleteBook(ctx context.Context, title string, authorID int64) (bool, error)
}

// HandlerDeleteBook ищет книгу по паре (автор, название) из пути
func HandlerDeleteBook(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		authorID, err := httputils.PathID(vars["author_id"])
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}
		title := vars["title"]

		deleted, err := svc.DeleteBook(r.Context(), title, authorID)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		msg := fmt.Sprintf("book %q deleted", title)
		if !deleted {
			msg = fmt.Sprintf("book %q by author %d not found", title, authorID)
		}
		httputils.WriteJSONResponse(w, http.StatusOK, dto.DeleteResponse{Deleted: deleted, Message: msg})
	}
}
