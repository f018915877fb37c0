package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"librarycatalog/internal/domain/models"

	"github.com/mattn/go-sqlite3"
)

const (
	storageMaxOpenConnections     = 4
	storageMaxIdleConnections     = 2
	storageConnectionsMaxIdleTime = 2 * time.Minute
	storagePingTimeout            = 5 * time.Second
	storageBusyTimeoutMillis      = 5000
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		login TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		rights TEXT NOT NULL DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS authors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL UNIQUE,
		pages INTEGER NOT NULL CHECK (pages > 10),
		author_id INTEGER NOT NULL REFERENCES authors(id)
	)`,
	`CREATE INDEX IF NOT EXISTS books_author_id_idx ON books(author_id)`,
}

type SQLiteStorage struct {
	db *sql.DB
}

// NewStorage открывает (или создает) файл базы и применяет схему.
// _txlock=immediate берет блокировку на запись сразу в BEGIN, без апгрейда посреди транзакции.
func NewStorage(ctx context.Context, path string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=1&_journal_mode=WAL&_txlock=immediate",
		path, storageBusyTimeoutMillis)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(storageMaxOpenConnections)
	db.SetMaxIdleConns(storageMaxIdleConnections)
	db.SetConnMaxIdleTime(storageConnectionsMaxIdleTime)

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// mapConstraintErr переводит ошибки ограничений sqlite в доменные.
// Имя нарушенного столбца sqlite кладет в текст: "UNIQUE constraint failed: authors.name".
func mapConstraintErr(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "users.login"):
			return models.ErrDuplicateLogin
		case strings.Contains(msg, "authors.name"):
			return models.ErrDuplicateName
		case strings.Contains(msg, "books.title"):
			return models.ErrDuplicateTitle
		}
		return fmt.Errorf("%w: %v", models.ErrConflict, err)
	case sqlite3.ErrConstraintForeignKey:
		return models.ErrUnknownAuthor
	case sqlite3.ErrConstraintCheck:
		return models.ErrInvalidPages
	}
	return err
}

func (s *SQLiteStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	res, err := s.querier(ctx).ExecContext(ctx,
		"INSERT INTO users (login, password_hash, rights) VALUES (?, ?, ?)",
		user.Login, user.PasswordHash, user.Rights,
	)
	if err != nil {
		return models.User{}, mapConstraintErr(err)
	}

	user.ID, err = res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user id: %w", err)
	}
	return user, nil
}

func (s *SQLiteStorage) UserGetByLogin(ctx context.Context, login string) (models.User, error) {
	var u models.User
	err := s.querier(ctx).QueryRowContext(ctx,
		"SELECT id, login, password_hash, rights FROM users WHERE login = ?",
		login,
	).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Rights)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: user %q", models.ErrNotFound, login)
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (s *SQLiteStorage) AuthorCreate(ctx context.Context, author models.Author) (models.Author, error) {
	res, err := s.querier(ctx).ExecContext(ctx,
		"INSERT INTO authors (name) VALUES (?)",
		author.Name,
	)
	if err != nil {
		return models.Author{}, mapConstraintErr(err)
	}

	author.ID, err = res.LastInsertId()
	if err != nil {
		return models.Author{}, fmt.Errorf("failed to get author id: %w", err)
	}
	return author, nil
}

func (s *SQLiteStorage) AuthorGetByID(ctx context.Context, id int64) (models.Author, error) {
	var a models.Author
	err := s.querier(ctx).QueryRowContext(ctx,
		"SELECT id, name FROM authors WHERE id = ?",
		id,
	).Scan(&a.ID, &a.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Author{}, fmt.Errorf("%w: author %d", models.ErrNotFound, id)
		}
		return models.Author{}, fmt.Errorf("failed to get author: %w", err)
	}
	return a, nil
}

func (s *SQLiteStorage) AuthorList(ctx context.Context, skip, limit int) ([]models.Author, error) {
	rows, err := s.querier(ctx).QueryContext(ctx,
		"SELECT id, name FROM authors ORDER BY id LIMIT ? OFFSET ?",
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := make([]models.Author, 0)
	for rows.Next() {
		var a models.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return authors, nil
}

func (s *SQLiteStorage) AuthorDelete(ctx context.Context, id int64) (bool, error) {
	res, err := s.querier(ctx).ExecContext(ctx, "DELETE FROM authors WHERE id = ?", id)
	if err != nil {
		if errors.Is(mapConstraintErr(err), models.ErrUnknownAuthor) {
			return false, fmt.Errorf("%w: author %d still has books", models.ErrConflict, id)
		}
		return false, fmt.Errorf("failed to delete author: %w", err)
	}
	return affected(res)
}

func (s *SQLiteStorage) BookCreate(ctx context.Context, book models.Book) (models.Book, error) {
	res, err := s.querier(ctx).ExecContext(ctx,
		"INSERT INTO books (title, pages, author_id) VALUES (?, ?, ?)",
		book.Title, book.Pages, book.AuthorID,
	)
	if err != nil {
		return models.Book{}, mapConstraintErr(err)
	}

	book.ID, err = res.LastInsertId()
	if err != nil {
		return models.Book{}, fmt.Errorf("failed to get book id: %w", err)
	}
	return book, nil
}

func (s *SQLiteStorage) BookList(ctx context.Context, skip, limit int) ([]models.Book, error) {
	return s.queryBooks(ctx,
		"SELECT id, title, pages, author_id FROM books ORDER BY id LIMIT ? OFFSET ?",
		limit, skip,
	)
}

func (s *SQLiteStorage) BookListByAuthor(ctx context.Context, authorID int64) ([]models.Book, error) {
	return s.queryBooks(ctx,
		"SELECT id, title, pages, author_id FROM books WHERE author_id = ? ORDER BY id",
		authorID,
	)
}

func (s *SQLiteStorage) BookDelete(ctx context.Context, title string, authorID int64) (bool, error) {
	res, err := s.querier(ctx).ExecContext(ctx,
		"DELETE FROM books WHERE title = ? AND author_id = ?",
		title, authorID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete book: %w", err)
	}
	return affected(res)
}

func (s *SQLiteStorage) BookDeleteByAuthor(ctx context.Context, authorID int64) (int64, error) {
	res, err := s.querier(ctx).ExecContext(ctx, "DELETE FROM books WHERE author_id = ?", authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete author books: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func (s *SQLiteStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) queryBooks(ctx context.Context, query string, args ...any) ([]models.Book, error) {
	rows, err := s.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Pages, &b.AuthorID); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return books, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}
