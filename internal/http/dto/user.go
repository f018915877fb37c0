package dto

import (
	"net/url"

	"librarycatalog/internal/domain/models"
)

// Request
type (
	CredentialsRequest struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	// Права через HTTP не назначаются, admin заводится через catalogctl
	UserCreateRequest struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
)

// Response
type UserResponse struct {
	ID     int64  `json:"id"`
	Login  string `json:"login"`
	Rights string `json:"rights"`
}

// Форма логина в OAuth2 password flow называет поле username
func (r *CredentialsRequest) FromForm(v url.Values) error {
	r.Login = v.Get("login")
	if r.Login == "" {
		r.Login = v.Get("username")
	}
	r.Password = v.Get("password")
	return nil
}

func (r *UserCreateRequest) FromForm(v url.Values) error {
	r.Login = v.Get("login")
	r.Password = v.Get("password")
	return nil
}

// Domain → Response, хэш пароля наружу не попадает
func UserResponseFromDomain(u models.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Login:  u.Login,
		Rights: u.Rights,
	}
}
