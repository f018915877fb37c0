package dto

import "time"

type (
	LoginResponse struct {
		Login     string    `json:"login"`
		ExpiresAt time.Time `json:"expires_at"`
	}

	TokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	DeleteResponse struct {
		Deleted bool   `json:"deleted"`
		Message string `json:"message"`
	}

	StatusResponse struct {
		Status string `json:"status"`
	}
)
