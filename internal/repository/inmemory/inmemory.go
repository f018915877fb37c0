package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"librarycatalog/internal/domain/models"
)

const initLastID = 0

type InmemoryStorage struct {
	mu sync.RWMutex
	// txMu сериализует WithinTx между собой, отдельные операции берут mu
	txMu sync.Mutex

	users   map[string]models.User // по логину
	authors map[int64]models.Author
	books   map[int64]models.Book

	lastUserID   int64
	lastAuthorID int64
	lastBookID   int64
}

func NewStorage() *InmemoryStorage {
	return &InmemoryStorage{
		users:        make(map[string]models.User),
		authors:      make(map[int64]models.Author),
		books:        make(map[int64]models.Book),
		lastUserID:   initLastID,
		lastAuthorID: initLastID,
		lastBookID:   initLastID,
	}
}

func (m *InmemoryStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Login]; exists {
		return models.User{}, models.ErrDuplicateLogin
	}

	m.lastUserID++
	user.ID = m.lastUserID
	m.users[user.Login] = user
	return user, nil
}

func (m *InmemoryStorage) UserGetByLogin(ctx context.Context, login string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[login]
	if !exists {
		return models.User{}, fmt.Errorf("%w: user %q", models.ErrNotFound, login)
	}
	return user, nil
}

func (m *InmemoryStorage) AuthorCreate(ctx context.Context, author models.Author) (models.Author, error) {
	if err := ctx.Err(); err != nil {
		return models.Author{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.authors {
		if a.Name == author.Name {
			return models.Author{}, models.ErrDuplicateName
		}
	}

	m.lastAuthorID++
	author.ID = m.lastAuthorID
	m.authors[author.ID] = author
	return author, nil
}

func (m *InmemoryStorage) AuthorGetByID(ctx context.Context, id int64) (models.Author, error) {
	if err := ctx.Err(); err != nil {
		return models.Author{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	author, exists := m.authors[id]
	if !exists {
		return models.Author{}, fmt.Errorf("%w: author %d", models.ErrNotFound, id)
	}
	return author, nil
}

func (m *InmemoryStorage) AuthorList(ctx context.Context, skip, limit int) ([]models.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	authors := make([]models.Author, 0, len(m.authors))
	for _, a := range m.authors {
		authors = append(authors, a)
	}
	m.mu.RUnlock()

	sort.Slice(authors, func(i, j int) bool {
		return authors[i].ID < authors[j].ID
	})

	return page(authors, skip, limit), nil
}

// AuthorDelete заодно убирает оставшиеся книги автора, висячих ссылок не бывает.
func (m *InmemoryStorage) AuthorDelete(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.authors[id]; !exists {
		return false, nil
	}

	for bookID, b := range m.books {
		if b.AuthorID == id {
			delete(m.books, bookID)
		}
	}
	delete(m.authors, id)
	return true, nil
}

func (m *InmemoryStorage) BookCreate(ctx context.Context, book models.Book) (models.Book, error) {
	if err := ctx.Err(); err != nil {
		return models.Book{}, err
	}
	if book.Pages <= models.MinBookPages {
		return models.Book{}, models.ErrInvalidPages
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.authors[book.AuthorID]; !exists {
		return models.Book{}, models.ErrUnknownAuthor
	}
	for _, b := range m.books {
		if b.Title == book.Title {
			return models.Book{}, models.ErrDuplicateTitle
		}
	}

	m.lastBookID++
	book.ID = m.lastBookID
	m.books[book.ID] = book
	return book, nil
}

func (m *InmemoryStorage) BookList(ctx context.Context, skip, limit int) ([]models.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return page(m.sortedBooks(func(models.Book) bool { return true }), skip, limit), nil
}

func (m *InmemoryStorage) BookListByAuthor(ctx context.Context, authorID int64) ([]models.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return m.sortedBooks(func(b models.Book) bool { return b.AuthorID == authorID }), nil
}

func (m *InmemoryStorage) BookDelete(ctx context.Context, title string, authorID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, b := range m.books {
		if b.Title == title && b.AuthorID == authorID {
			delete(m.books, id)
			return true, nil
		}
	}
	return false, nil
}

func (m *InmemoryStorage) BookDeleteByAuthor(ctx context.Context, authorID int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, b := range m.books {
		if b.AuthorID == authorID {
			delete(m.books, id)
			n++
		}
	}
	return n, nil
}

// WithinTx не дает настоящей изоляции: только сериализует транзакции между собой.
func (m *InmemoryStorage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	return fn(ctx)
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *InmemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[string]models.User)
	m.authors = make(map[int64]models.Author)
	m.books = make(map[int64]models.Book)
	m.lastUserID, m.lastAuthorID, m.lastBookID = initLastID, initLastID, initLastID
	return nil
}

func (m *InmemoryStorage) sortedBooks(keep func(models.Book) bool) []models.Book {
	m.mu.RLock()
	books := make([]models.Book, 0, len(m.books))
	for _, b := range m.books {
		if keep(b) {
			books = append(books, b)
		}
	}
	m.mu.RUnlock()

	sort.Slice(books, func(i, j int) bool {
		return books[i].ID < books[j].ID
	})
	return books
}

func page[T any](items []T, skip, limit int) []T {
	start := skip
	if start > len(items) {
		start = len(items)
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
