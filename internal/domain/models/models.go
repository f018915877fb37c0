package models

import (
	"errors"
	"fmt"
)

const (
	RightsUser  = "user"
	RightsAdmin = "admin"
)

type (
	User struct {
		ID           int64  // Уникальный идентификатор
		Login        string // уникальный логин
		PasswordHash string // bcrypt digest, наружу не отдается
		Rights       string // "user" / "admin", на этом слое не проверяется
	}

	Author struct {
		ID   int64
		Name string
	}

	Book struct {
		ID       int64
		Title    string // уникально глобально, не в пределах автора
		Pages    int
		AuthorID int64
	}
)

var (
	ErrInvalidInput  = errors.New("invalid input data")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrUnknownAuthor = errors.New("unknown author")
	ErrAuthFailed    = errors.New("authentication failed")

	ErrDuplicateLogin = fmt.Errorf("%w: login is taken", ErrConflict)
	ErrDuplicateName  = fmt.Errorf("%w: author name is taken", ErrConflict)
	ErrDuplicateTitle = fmt.Errorf("%w: book title is taken", ErrConflict)

	ErrInvalidPages = fmt.Errorf("%w: pages must be greater than %d", ErrInvalidInput, MinBookPages)
)
