package dto

import (
	"fmt"
	"net/url"
	"strconv"

	"librarycatalog/internal/domain/models"
)

type BookCreateRequest struct {
	Title string `json:"title"`
	Pages int    `json:"pages"`
}

type BookResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Pages    int    `json:"pages"`
	AuthorID int64  `json:"author_id"`
}

func (r *BookCreateRequest) FromForm(v url.Values) error {
	r.Title = v.Get("title")

	pages, err := strconv.Atoi(v.Get("pages"))
	if err != nil {
		return fmt.Errorf("%w: pages must be an integer", models.ErrInvalidInput)
	}
	r.Pages = pages
	return nil
}

func BookResponseFromDomain(b models.Book) BookResponse {
	return BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		Pages:    b.Pages,
		AuthorID: b.AuthorID,
	}
}

func BooksResponseFromDomains(books []models.Book) []BookResponse {
	resp := make([]BookResponse, len(books))
	for i, b := range books {
		resp[i] = BookResponseFromDomain(b)
	}
	return resp
}
