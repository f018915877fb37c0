package compressor

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"librarycatalog/internal/http/httputils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		httputils.WriteJSONResponse(w, http.StatusOK, map[string]string{"echo": string(body)})
	})
}

func TestMiddlewareCompressing_Response(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/books/", nil)
	r.Header.Set(httputils.HeaderAcceptEncoding, "gzip, deflate")
	w := httptest.NewRecorder()

	MiddlewareCompressing()(echoHandler(t)).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, httputils.EncodingGzip, w.Header().Get(httputils.HeaderContentEncoding))

	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.JSONEq(t, `{"echo":""}`, string(plain))
}

func TestMiddlewareCompressing_Request(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	r := httptest.NewRequest(http.MethodPost, "/authors/", &buf)
	r.Header.Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
	w := httptest.NewRecorder()

	MiddlewareCompressing()(echoHandler(t)).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(httputils.HeaderContentEncoding))
	assert.JSONEq(t, `{"echo":"hello"}`, w.Body.String())
}

func TestMiddlewareCompressing_BrokenGzip(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/authors/", bytes.NewBufferString("not gzip"))
	r.Header.Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
	w := httptest.NewRecorder()

	MiddlewareCompressing()(echoHandler(t)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
