package delete_author

import (
	"context"
	"fmt"
	"net/http"

	"librarycatalog/internal/http/dto"
	"librarycatalog/internal/http/httputils"

	"github.com/gorilla/mux"
)

type Catalog interface {
	DeleteAuthor(ctx context.Context, id int64) (bool, error)
}

// HandlerDeleteAuthor: отсутствующий автор - 200 с deleted=false, не 404
func HandlerDeleteAuthor(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.PathID(mux.Vars(r)["author_id"])
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		deleted, err := svc.DeleteAuthor(r.Context(), id)
		if err != nil {
			httputils.WriteDomainError(w, r, err)
			return
		}

		msg := fmt.Sprintf("author %d deleted", id)
		if !deleted {
			msg = fmt.Sprintf("author %d not found", id)
		}
		httputils.WriteJSONResponse(w, http.StatusOK, dto.DeleteResponse{Deleted: deleted, Message: msg})
	}
}
