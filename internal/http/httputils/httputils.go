package httputils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"librarycatalog/internal/domain/models"

	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// FormDecoder - запрос, который умеет заполнить себя из HTML-формы
type FormDecoder interface {
	FromForm(values url.Values) error
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// StatusFromError сопоставляет доменную ошибку HTTP-статусу
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, models.ErrAuthFailed):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrUnknownAuthor):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteDomainError пишет статус по ошибке. Внутренние ошибки логируются, наружу уходит только текст статуса.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		WriteJSONError(w, status, http.StatusText(status))
		return
	}
	WriteJSONError(w, status, err.Error())
}

// DecodeRequest читает тело как JSON или как форму, в зависимости от Content-Type
func DecodeRequest(w http.ResponseWriter, r *http.Request, dst FormDecoder) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if IsJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("%w: malformed JSON body", models.ErrInvalidInput)
		}
		return nil
	}

	var err error
	if strings.HasPrefix(r.Header.Get(HeaderContentType), MIMEMultipartForm) {
		err = r.ParseMultipartForm(maxBodyBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return fmt.Errorf("%w: malformed form body", models.ErrInvalidInput)
	}
	return dst.FromForm(r.PostForm)
}

func IsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(HeaderContentType), MIMEApplicationJSON)
}

// QueryInt читает целый query-параметр, пустое значение - def
func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", models.ErrInvalidInput, key)
	}
	return n, nil
}

// PathID разбирает числовой идентификатор из пути
func PathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer", models.ErrInvalidInput)
	}
	return id, nil
}

// Кука без Expires/MaxAge: живет до закрытия браузера, срок годности задает сам JWT.
func SetAuthCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearAuthCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest достает токен из куки, иначе из заголовка Authorization: Bearer
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get(HeaderAuthorization)
	if len(header) > len(BearerPrefix) && strings.EqualFold(header[:len(BearerPrefix)], BearerPrefix) {
		return strings.TrimSpace(header[len(BearerPrefix):])
	}
	return ""
}
