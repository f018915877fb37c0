package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"librarycatalog/internal/domain/models"
)

/*
CatalogStorage - хранилище авторов и книг.
Уникальность и внешние ключи проверяет само хранилище и возвращает
models.ErrDuplicateName / ErrDuplicateTitle / ErrUnknownAuthor.
*/

//go:generate mockgen -source=catalog.go -destination=../../mocks/mock_catalog_storage.go -package=mocks
type CatalogStorage interface {
	AuthorCreate(ctx context.Context, author models.Author) (models.Author, error)
	AuthorGetByID(ctx context.Context, id int64) (models.Author, error)
	AuthorList(ctx context.Context, skip, limit int) ([]models.Author, error)
	AuthorDelete(ctx context.Context, id int64) (bool, error)

	BookCreate(ctx context.Context, book models.Book) (models.Book, error)
	BookList(ctx context.Context, skip, limit int) ([]models.Book, error)
	BookListByAuthor(ctx context.Context, authorID int64) ([]models.Book, error)
	BookDelete(ctx context.Context, title string, authorID int64) (bool, error)
	BookDeleteByAuthor(ctx context.Context, authorID int64) (int64, error)

	Ping(ctx context.Context) error

	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Catalog реализует операции над авторами и книгами
type Catalog struct {
	storage CatalogStorage
}

func NewCatalog(storage CatalogStorage) *Catalog {
	return &Catalog{storage: storage}
}

func (c *Catalog) CreateAuthor(ctx context.Context, name string) (models.Author, error) {
	name = strings.TrimSpace(name)
	if err := models.ValidateAuthorName(name); err != nil {
		return models.Author{}, err
	}

	author, err := c.storage.AuthorCreate(ctx, models.Author{Name: name})
	if err != nil {
		return models.Author{}, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

func (c *Catalog) GetAuthor(ctx context.Context, id int64) (models.Author, error) {
	if id <= 0 {
		return models.Author{}, fmt.Errorf("%w: author %d", models.ErrNotFound, id)
	}

	author, err := c.storage.AuthorGetByID(ctx, id)
	if err != nil {
		return models.Author{}, fmt.Errorf("failed to get author: %w", err)
	}
	return author, nil
}

func (c *Catalog) ListAuthors(ctx context.Context, skip, limit int) ([]models.Author, error) {
	skip, limit, err := models.NormalizePage(skip, limit)
	if err != nil {
		return nil, err
	}

	authors, err := c.storage.AuthorList(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

// DeleteAuthor удаляет автора вместе с его книгами в одной транзакции.
// Отсутствующий автор - не ошибка, возвращается false.
func (c *Catalog) DeleteAuthor(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	var deleted bool
	err := c.storage.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := c.storage.AuthorGetByID(ctx, id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil
			}
			return err
		}

		if _, err := c.storage.BookDeleteByAuthor(ctx, id); err != nil {
			return fmt.Errorf("failed to delete author books: %w", err)
		}

		ok, err := c.storage.AuthorDelete(ctx, id)
		if err != nil {
			return err
		}
		deleted = ok
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete author: %w", err)
	}

	return deleted, nil
}

func (c *Catalog) CreateBook(ctx context.Context, title string, pages int, authorID int64) (models.Book, error) {
	title = strings.TrimSpace(title)
	if err := models.ValidateBook(title, pages); err != nil {
		return models.Book{}, err
	}
	if authorID <= 0 {
		return models.Book{}, models.ErrUnknownAuthor
	}

	book, err := c.storage.BookCreate(ctx, models.Book{
		Title:    title,
		Pages:    pages,
		AuthorID: authorID,
	})
	if err != nil {
		return models.Book{}, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

func (c *Catalog) ListBooks(ctx context.Context, skip, limit int) ([]models.Book, error) {
	skip, limit, err := models.NormalizePage(skip, limit)
	if err != nil {
		return nil, err
	}

	books, err := c.storage.BookList(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// ListBooksByAuthor - явный запрос вместо ленивой связи author.books.
func (c *Catalog) ListBooksByAuthor(ctx context.Context, authorID int64) ([]models.Book, error) {
	if _, err := c.GetAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	books, err := c.storage.BookListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list author books: %w", err)
	}
	return books, nil
}

// DeleteBook ищет книгу по паре (title, authorID). Нет такой пары - false без ошибки.
func (c *Catalog) DeleteBook(ctx context.Context, title string, authorID int64) (bool, error) {
	if title == "" || authorID <= 0 {
		return false, nil
	}

	deleted, err := c.storage.BookDelete(ctx, title, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to delete book: %w", err)
	}
	return deleted, nil
}

func (c *Catalog) Ping(ctx context.Context) error {
	return c.storage.Ping(ctx)
}
