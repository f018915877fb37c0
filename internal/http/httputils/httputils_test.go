package httputils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"librarycatalog/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{models.ErrAuthFailed, http.StatusUnauthorized},
		{models.ErrDuplicateTitle, http.StatusConflict},
		{fmt.Errorf("failed to create author: %w", models.ErrDuplicateName), http.StatusConflict},
		{models.ErrNotFound, http.StatusNotFound},
		{models.ErrUnknownAuthor, http.StatusNotFound},
		{models.ErrInvalidPages, http.StatusBadRequest},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromError(tt.err), "%v", tt.err)
	}
}

func TestWriteDomainError_HidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/books/", nil)
	WriteDomainError(w, r, errors.New("pq: password authentication failed for user postgres"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "postgres")
	assert.Equal(t, MIMEApplicationJSON, w.Header().Get(HeaderContentType))
}

type credentials struct {
	Login string `json:"login"`
}

func (c *credentials) FromForm(v url.Values) error {
	c.Login = v.Get("login")
	return nil
}

func TestDecodeRequest(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":"alice"}`))
		r.Header.Set(HeaderContentType, MIMEApplicationJSON+"; charset=utf-8")

		var c credentials
		require.NoError(t, DecodeRequest(httptest.NewRecorder(), r, &c))
		assert.Equal(t, "alice", c.Login)
	})

	t.Run("Форма", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("login=bob"))
		r.Header.Set(HeaderContentType, MIMEApplicationForm)

		var c credentials
		require.NoError(t, DecodeRequest(httptest.NewRecorder(), r, &c))
		assert.Equal(t, "bob", c.Login)
	})

	t.Run("Битый JSON", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":`))
		r.Header.Set(HeaderContentType, MIMEApplicationJSON)

		var c credentials
		assert.ErrorIs(t, DecodeRequest(httptest.NewRecorder(), r, &c), models.ErrInvalidInput)
	})
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	assert.Empty(t, TokenFromRequest(r))

	r.Header.Set(HeaderAuthorization, "bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", TokenFromRequest(r))

	r.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "from.cookie"})
	assert.Equal(t, "from.cookie", TokenFromRequest(r), "кука важнее заголовка")

	r = httptest.NewRequest(http.MethodGet, "/users/me", nil)
	r.Header.Set(HeaderAuthorization, "Basic dXNlcjpwYXNz")
	assert.Empty(t, TokenFromRequest(r))
}

func TestAuthCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetAuthCookie(w, "tok", false)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, AuthCookieName, c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.Expires.IsZero())
	assert.Zero(t, c.MaxAge)
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/authors/?skip=5&limit=x", nil)

	n, err := QueryInt(r, "skip", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = QueryInt(r, "limit", 100)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	n, err = QueryInt(r, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
