package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"librarycatalog/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDB(t *testing.T) *SQLiteStorage {
	t.Helper()

	s, err := NewStorage(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStorage_Users(t *testing.T) {
	ctx := context.Background()
	s := tempDB(t)

	u, err := s.UserCreate(ctx, models.User{Login: "alice", PasswordHash: "digest", Rights: models.RightsUser})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	_, err = s.UserCreate(ctx, models.User{Login: "alice", PasswordHash: "other", Rights: models.RightsUser})
	assert.ErrorIs(t, err, models.ErrDuplicateLogin)

	got, err := s.UserGetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = s.UserGetByLogin(ctx, "bob")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSQLiteStorage_AuthorsAndBooks(t *testing.T) {
	ctx := context.Background()
	s := tempDB(t)

	orwell, err := s.AuthorCreate(ctx, models.Author{Name: "Orwell"})
	require.NoError(t, err)

	_, err = s.AuthorCreate(ctx, models.Author{Name: "Orwell"})
	assert.ErrorIs(t, err, models.ErrDuplicateName)

	_, err = s.BookCreate(ctx, models.Book{Title: "1984", Pages: 5, AuthorID: orwell.ID})
	assert.ErrorIs(t, err, models.ErrInvalidPages, "CHECK на уровне схемы")

	b, err := s.BookCreate(ctx, models.Book{Title: "1984", Pages: 328, AuthorID: orwell.ID})
	require.NoError(t, err)
	assert.NotZero(t, b.ID)

	_, err = s.BookCreate(ctx, models.Book{Title: "1984", Pages: 328, AuthorID: orwell.ID})
	assert.ErrorIs(t, err, models.ErrDuplicateTitle)

	_, err = s.BookCreate(ctx, models.Book{Title: "Ghost", Pages: 100, AuthorID: 999})
	assert.ErrorIs(t, err, models.ErrUnknownAuthor)

	got, err := s.AuthorGetByID(ctx, orwell.ID)
	require.NoError(t, err)
	assert.Equal(t, orwell, got)

	_, err = s.AuthorGetByID(ctx, 999)
	assert.ErrorIs(t, err, models.ErrNotFound)

	books, err := s.BookListByAuthor(ctx, orwell.ID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, b, books[0])

	deleted, err := s.BookDelete(ctx, "1984", orwell.ID+1)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = s.BookDelete(ctx, "1984", orwell.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestSQLiteStorage_Pagination(t *testing.T) {
	ctx := context.Background()
	s := tempDB(t)

	for _, name := range []string{"Orwell", "Huxley", "Bradbury", "Zamyatin"} {
		_, err := s.AuthorCreate(ctx, models.Author{Name: name})
		require.NoError(t, err)
	}

	page, err := s.AuthorList(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Huxley", page[0].Name)
	assert.Equal(t, "Bradbury", page[1].Name)

	page, err = s.AuthorList(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.NotNil(t, page, "пустой список, а не nil: в JSON уходит []")
}

func TestSQLiteStorage_WithinTx(t *testing.T) {
	ctx := context.Background()
	s := tempDB(t)

	a, err := s.AuthorCreate(ctx, models.Author{Name: "Orwell"})
	require.NoError(t, err)
	_, err = s.BookCreate(ctx, models.Book{Title: "1984", Pages: 328, AuthorID: a.ID})
	require.NoError(t, err)

	t.Run("Автор с книгами не удаляется без каскада", func(t *testing.T) {
		_, err := s.AuthorDelete(ctx, a.ID)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("Откат при ошибке", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithinTx(ctx, func(ctx context.Context) error {
			n, err := s.BookDeleteByAuthor(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		books, err := s.BookListByAuthor(ctx, a.ID)
		require.NoError(t, err)
		assert.Len(t, books, 1, "книга должна вернуться после отката")
	})

	t.Run("Каскад в транзакции", func(t *testing.T) {
		var deleted bool
		err := s.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := s.BookDeleteByAuthor(ctx, a.ID); err != nil {
				return err
			}
			var err error
			deleted, err = s.AuthorDelete(ctx, a.ID)
			return err
		})
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = s.AuthorGetByID(ctx, a.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSQLiteStorage_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "library.db")

	s, err := NewStorage(ctx, path)
	require.NoError(t, err)
	_, err = s.AuthorCreate(ctx, models.Author{Name: "Orwell"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStorage(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	authors, err := s.AuthorList(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "Orwell", authors[0].Name)
	assert.NoError(t, s.Ping(ctx))
}
