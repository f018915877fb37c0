package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTTL = 30 * time.Minute

	minSecretKeyLen = 32
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidKey   = fmt.Errorf("invalid JWT secret key: must be at least %d bytes when decoded", minSecretKeyLen)
)

// Service выпускает и проверяет HS256 токены. Состояния не хранит:
// смена ключа инвалидирует все выданные токены.
type Service struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

type Option func(*Service)

// WithClock подменяет источник времени, нужно в тестах.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService принимает секрет в base64 (как в конфиге), ttl <= 0 заменяется на DefaultTTL.
func NewService(secretKey string, ttl time.Duration, opts ...Option) (*Service, error) {
	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil || len(key) < minSecretKeyLen {
		return nil, ErrInvalidKey
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &Service{
		secretKey: key,
		ttl:       ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue возвращает подписанный токен и момент его истечения.
func (s *Service) Issue(subject string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, claims.ExpiresAt.Time, nil
}

// Verify проверяет подпись и срок жизни, возвращает subject.
// Ошибки: ErrInvalidToken или ErrTokenExpired.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}
