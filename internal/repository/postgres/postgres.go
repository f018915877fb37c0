package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"librarycatalog/internal/domain/models"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	storageMaxOpenConnections     = 5
	storageMaxIdleConnections     = 2
	storageConnectionsMaxIdleTime = 2 * time.Minute
	storageConnectionsLifetime    = 30 * time.Minute
	storagePingTimeout            = 5 * time.Second
)

// Имена ограничений заданы явно, по ним различаются дубликаты
const (
	constraintUsersLogin  = "users_login_key"
	constraintAuthorsName = "authors_name_key"
	constraintBooksTitle  = "books_title_key"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		login VARCHAR(50) NOT NULL,
		password_hash TEXT NOT NULL,
		rights VARCHAR(20) NOT NULL DEFAULT 'user',
		CONSTRAINT users_login_key UNIQUE (login)
	)`,
	`CREATE TABLE IF NOT EXISTS authors (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(30) NOT NULL,
		CONSTRAINT authors_name_key UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		pages INTEGER NOT NULL,
		author_id BIGINT NOT NULL REFERENCES authors(id),
		CONSTRAINT books_title_key UNIQUE (title),
		CONSTRAINT books_pages_check CHECK (pages > 10)
	)`,
	`CREATE INDEX IF NOT EXISTS books_author_id_idx ON books(author_id)`,
}

type PostgresStorage struct {
	db *sql.DB
}

func NewStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	initConnectionPools(db)

	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

func initConnectionPools(db *sql.DB) {
	db.SetMaxOpenConns(storageMaxOpenConnections)
	db.SetMaxIdleConns(storageMaxIdleConnections)
	db.SetConnMaxIdleTime(storageConnectionsMaxIdleTime)
	db.SetConnMaxLifetime(storageConnectionsLifetime)
}

func createTables(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func mapConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintUsersLogin:
			return models.ErrDuplicateLogin
		case constraintAuthorsName:
			return models.ErrDuplicateName
		case constraintBooksTitle:
			return models.ErrDuplicateTitle
		}
		return fmt.Errorf("%w: %s", models.ErrConflict, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return models.ErrUnknownAuthor
	case pgerrcode.CheckViolation:
		return models.ErrInvalidPages
	case pgerrcode.StringDataRightTruncationDataException:
		return fmt.Errorf("%w: value too long", models.ErrInvalidInput)
	}
	return err
}

func (p *PostgresStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	err := p.querier(ctx).QueryRowContext(ctx, `
		INSERT INTO users (login, password_hash, rights)
		VALUES ($1, $2, $3)
		RETURNING id`,
		user.Login, user.PasswordHash, user.Rights,
	).Scan(&user.ID)
	if err != nil {
		return models.User{}, mapConstraintErr(err)
	}
	return user, nil
}

func (p *PostgresStorage) UserGetByLogin(ctx context.Context, login string) (models.User, error) {
	var u models.User
	err := p.querier(ctx).QueryRowContext(ctx,
		"SELECT id, login, password_hash, rights FROM users WHERE login = $1",
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

func (p *PostgresStorage) AuthorCreate(ctx context.Context, author models.Author) (models.Author, error) {
	err := p.querier(ctx).QueryRowContext(ctx,
		"INSERT INTO authors (name) VALUES ($1) RETURNING id",
		author.Name,
	).Scan(&author.ID)
	if err != nil {
		return models.Author{}, mapConstraintErr(err)
	}
	return author, nil
}

func (p *PostgresStorage) AuthorGetByID(ctx context.Context, id int64) (models.Author, error) {
	var a models.Author
	err := p.querier(ctx).QueryRowContext(ctx,
		"SELECT id, name FROM authors WHERE id = $1",
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

func (p *PostgresStorage) AuthorList(ctx context.Context, skip, limit int) ([]models.Author, error) {
	rows, err := p.querier(ctx).QueryContext(ctx,
		"SELECT id, name FROM authors ORDER BY id LIMIT $1 OFFSET $2",
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

func (p *PostgresStorage) AuthorDelete(ctx context.Context, id int64) (bool, error) {
	res, err := p.querier(ctx).ExecContext(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		if errors.Is(mapConstraintErr(err), models.ErrUnknownAuthor) {
			return false, fmt.Errorf("%w: author %d still has books", models.ErrConflict, id)
		}
		return false, fmt.Errorf("failed to delete author: %w", err)
	}
	return affected(res)
}

func (p *PostgresStorage) BookCreate(ctx context.Context, book models.Book) (models.Book, error) {
	err := p.querier(ctx).QueryRowContext(ctx, `
		INSERT INTO books (title, pages, author_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		book.Title, book.Pages, book.AuthorID,
	).Scan(&book.ID)
	if err != nil {
		return models.Book{}, mapConstraintErr(err)
	}
	return book, nil
}

func (p *PostgresStorage) BookList(ctx context.Context, skip, limit int) ([]models.Book, error) {
	return p.queryBooks(ctx,
		"SELECT id, title, pages, author_id FROM books ORDER BY id LIMIT $1 OFFSET $2",
		limit, skip,
	)
}

func (p *PostgresStorage) BookListByAuthor(ctx context.Context, authorID int64) ([]models.Book, error) {
	return p.queryBooks(ctx,
		"SELECT id, title, pages, author_id FROM books WHERE author_id = $1 ORDER BY id",
		authorID,
	)
}

func (p *PostgresStorage) BookDelete(ctx context.Context, title string, authorID int64) (bool, error) {
	res, err := p.querier(ctx).ExecContext(ctx,
		"DELETE FROM books WHERE title = $1 AND author_id = $2",
		title, authorID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete book: %w", err)
	}
	return affected(res)
}

func (p *PostgresStorage) BookDeleteByAuthor(ctx context.Context, authorID int64) (int64, error) {
	res, err := p.querier(ctx).ExecContext(ctx, "DELETE FROM books WHERE author_id = $1", authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete author books: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func (p *PostgresStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func (p *PostgresStorage) queryBooks(ctx context.Context, query string, args ...any) ([]models.Book, error) {
	rows, err := p.querier(ctx).QueryContext(ctx, query, args...)
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
