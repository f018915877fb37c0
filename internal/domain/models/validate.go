package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	AuthorNameMinLen = 3
	AuthorNameMaxLen = 30

	BookTitleMinLen = 1
	BookTitleMaxLen = 100

	// Книга должна иметь строго больше MinBookPages страниц.
	MinBookPages = 10

	LoginMinLen = 1
	LoginMaxLen = 50

	DefaultListLimit = 100
	MaxListLimit     = 100
)

func ValidateAuthorName(name string) error {
	n := utf8.RuneCountInString(name)
	if strings.TrimSpace(name) == "" || n < AuthorNameMinLen || n > AuthorNameMaxLen {
		return fmt.Errorf("%w: author name must be %d-%d characters", ErrInvalidInput, AuthorNameMinLen, AuthorNameMaxLen)
	}
	return nil
}

func ValidateBook(title string, pages int) error {
	n := utf8.RuneCountInString(title)
	if strings.TrimSpace(title) == "" || n < BookTitleMinLen || n > BookTitleMaxLen {
		return fmt.Errorf("%w: book title must be %d-%d characters", ErrInvalidInput, BookTitleMinLen, BookTitleMaxLen)
	}
	if pages <= MinBookPages {
		return ErrInvalidPages
	}
	return nil
}

func ValidateLogin(login string) error {
	n := utf8.RuneCountInString(login)
	if strings.TrimSpace(login) == "" || n < LoginMinLen || n > LoginMaxLen {
		return fmt.Errorf("%w: login must be %d-%d characters", ErrInvalidInput, LoginMinLen, LoginMaxLen)
	}
	return nil
}

// NormalizePage приводит skip/limit к допустимым значениям.
// Отрицательный skip - ошибка, limit <= 0 заменяется значением по умолчанию.
func NormalizePage(skip, limit int) (int, int, error) {
	if skip < 0 {
		return 0, 0, fmt.Errorf("%w: skip must not be negative", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return skip, limit, nil
}
