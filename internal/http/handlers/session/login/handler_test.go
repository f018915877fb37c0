package login

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/http/httputils"
	"librarycatalog/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandlerLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthenticator(ctrl)
	expiresAt := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Успешный вход ставит куку", func(t *testing.T) {
		mockAuth.EXPECT().Login(gomock.Any(), "alice", "pw").Return("signed.jwt.token", expiresAt, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=alice&password=pw"))
		req.Header.Set(httputils.HeaderContentType, httputils.MIMEApplicationForm)
		w := httptest.NewRecorder()

		HandlerLogin(mockAuth, true)(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"login":"alice","expires_at":"2030-01-02T03:04:05Z"}`, w.Body.String())

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, httputils.AuthCookieName, cookies[0].Name)
		assert.Equal(t, "signed.jwt.token", cookies[0].Value)
		assert.True(t, cookies[0].Secure)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		mockAuth.EXPECT().Login(gomock.Any(), "alice", "bad").Return("", time.Time{}, models.ErrAuthFailed)

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":"alice","password":"bad"}`))
		req.Header.Set(httputils.HeaderContentType, httputils.MIMEApplicationJSON)
		w := httptest.NewRecorder()

		HandlerLogin(mockAuth, false)(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"incorrect login or password"}`, w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("Хранилище недоступно", func(t *testing.T) {
		mockAuth.EXPECT().Login(gomock.Any(), "alice", "pw").Return("", time.Time{}, errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":"alice","password":"pw"}`))
		req.Header.Set(httputils.HeaderContentType, httputils.MIMEApplicationJSON)
		w := httptest.NewRecorder()

		HandlerLogin(mockAuth, false)(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "refused")
	})
}
