package repository

import (
	"context"

	"librarycatalog/internal/domain/models"
)

// Storage - общий интерфейс хранилищ (inmemory, sqlite, postgres)
type (
	Storage interface {
		// Пользователи
		UserCreate(ctx context.Context, user models.User) (models.User, error)
		UserGetByLogin(ctx context.Context, login string) (models.User, error)

		// Авторы
		AuthorCreate(ctx context.Context, author models.Author) (models.Author, error)
		AuthorGetByID(ctx context.Context, id int64) (models.Author, error)
		AuthorList(ctx context.Context, skip, limit int) ([]models.Author, error)
		AuthorDelete(ctx context.Context, id int64) (bool, error)

		// Книги
		BookCreate(ctx context.Context, book models.Book) (models.Book, error)
		BookList(ctx context.Context, skip, limit int) ([]models.Book, error)
		BookListByAuthor(ctx context.Context, authorID int64) ([]models.Book, error)
		BookDelete(ctx context.Context, title string, authorID int64) (bool, error)
		BookDeleteByAuthor(ctx context.Context, authorID int64) (int64, error)

		// Транзакции
		WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

		// Управление соединением
		Ping(ctx context.Context) error
		Close() error
	}
)
