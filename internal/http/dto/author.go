package dto

import (
	"net/url"

	"librarycatalog/internal/domain/models"
)

type AuthorCreateRequest struct {
	Name string `json:"name"`
}

type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r *AuthorCreateRequest) FromForm(v url.Values) error {
	r.Name = v.Get("name")
	return nil
}

func AuthorResponseFromDomain(a models.Author) AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.Name}
}

func AuthorsResponseFromDomains(authors []models.Author) []AuthorResponse {
	resp := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		resp[i] = AuthorResponseFromDomain(a)
	}
	return resp
}
