package token

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSecret  = base64.StdEncoding.EncodeToString([]byte("test-secret-key-32-bytes-long!!!"))
	otherSecret = base64.StdEncoding.EncodeToString([]byte("another-secret-key-32-bytes-long"))
)

func TestNewService_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "пустой ключ", key: ""},
		{name: "не base64", key: "%%%not-base64%%%"},
		{name: "короткий ключ", key: base64.StdEncoding.EncodeToString([]byte("short"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.key, time.Minute)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestService_IssueVerify(t *testing.T) {
	svc, err := NewService(testSecret, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, svc.TTL())

	tok, exp, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.Len(t, strings.Split(tok, "."), 3)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), exp, 2*time.Second)

	sub, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)
}

func TestService_Verify_Expired(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	issuer, err := NewService(testSecret, 30*time.Minute, WithClock(func() time.Time { return past }))
	require.NoError(t, err)

	tok, _, err := issuer.Issue("alice")
	require.NoError(t, err)

	verifier, err := NewService(testSecret, 30*time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestService_Verify_Invalid(t *testing.T) {
	svc, err := NewService(testSecret, time.Minute)
	require.NoError(t, err)
	other, err := NewService(otherSecret, time.Minute)
	require.NoError(t, err)

	foreign, _, err := other.Issue("alice")
	require.NoError(t, err)

	key, _ := base64.StdEncoding.DecodeString(testSecret)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(key)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "alice",
	}).SignedString(key)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(key)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "чужой секрет", token: foreign},
		{name: "мусор", token: "invalid.token.here"},
		{name: "пустая строка", token: ""},
		{name: "нет sub", token: noSubject},
		{name: "нет exp", token: noExpiry},
		{name: "другой алгоритм", token: hs512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestService_Issue_EmptySubject(t *testing.T) {
	svc, err := NewService(testSecret, time.Minute)
	require.NoError(t, err)

	_, _, err = svc.Issue("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
