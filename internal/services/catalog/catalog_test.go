package catalog

import (
	"context"
	"errors"
	"testing"

	"librarycatalog/internal/domain/models"
	"librarycatalog/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestCatalog_CreateAuthor(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		mockSetup   func(*mocks.MockCatalogStorage)
		want        models.Author
		expectedErr error
	}{
		{
			name:  "Успешное создание",
			input: "  Orwell ",
			mockSetup: func(m *mocks.MockCatalogStorage) {
				m.EXPECT().
					AuthorCreate(gomock.Any(), models.Author{Name: "Orwell"}).
					Return(models.Author{ID: 1, Name: "Orwell"}, nil)
			},
			want: models.Author{ID: 1, Name: "Orwell"},
		},
		{
			name:  "Дубликат имени",
			input: "Orwell",
			mockSetup: func(m *mocks.MockCatalogStorage) {
				m.EXPECT().
					AuthorCreate(gomock.Any(), gomock.Any()).
					Return(models.Author{}, models.ErrDuplicateName)
			},
			expectedErr: models.ErrDuplicateName,
		},
		{
			name:        "Слишком короткое имя",
			input:       "Al",
			mockSetup:   func(m *mocks.MockCatalogStorage) {},
			expectedErr: models.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStorage := mocks.NewMockCatalogStorage(ctrl)
			tt.mockSetup(mockStorage)

			got, err := NewCatalog(mockStorage).CreateAuthor(context.Background(), tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_CreateBook(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		pages       int
		authorID    int64
		mockSetup   func(*mocks.MockCatalogStorage)
		expectedErr error
	}{
		{
			name:     "Успешное создание",
			title:    "1984",
			pages:    328,
			authorID: 1,
			mockSetup: func(m *mocks.MockCatalogStorage) {
				m.EXPECT().
					BookCreate(gomock.Any(), models.Book{Title: "1984", Pages: 328, AuthorID: 1}).
					Return(models.Book{ID: 7, Title: "1984", Pages: 328, AuthorID: 1}, nil)
			},
		},
		{
			name:        "Мало страниц",
			title:       "1984",
			pages:       5,
			authorID:    1,
			mockSetup:   func(m *mocks.MockCatalogStorage) {},
			expectedErr: models.ErrInvalidPages,
		},
		{
			name:     "Неизвестный автор",
			title:    "1984",
			pages:    328,
			authorID: 42,
			mockSetup: func(m *mocks.MockCatalogStorage) {
				m.EXPECT().
					BookCreate(gomock.Any(), gomock.Any()).
					Return(models.Book{}, models.ErrUnknownAuthor)
			},
			expectedErr: models.ErrUnknownAuthor,
		},
		{
			name:        "Нулевой автор",
			title:       "1984",
			pages:       328,
			authorID:    0,
			mockSetup:   func(m *mocks.MockCatalogStorage) {},
			expectedErr: models.ErrUnknownAuthor,
		},
		{
			name:     "Дубликат названия",
			title:    "1984",
			pages:    328,
			authorID: 1,
			mockSetup: func(m *mocks.MockCatalogStorage) {
				m.EXPECT().
					BookCreate(gomock.Any(), gomock.Any()).
					Return(models.Book{}, models.ErrDuplicateTitle)
			},
			expectedErr: models.ErrDuplicateTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStorage := mocks.NewMockCatalogStorage(ctrl)
			tt.mockSetup(mockStorage)

			got, err := NewCatalog(mockStorage).CreateBook(context.Background(), tt.title, tt.pages, tt.authorID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), got.ID)
		})
	}
}

func TestCatalog_ListAuthors_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := mocks.NewMockCatalogStorage(ctrl)

	mockStorage.EXPECT().
		AuthorList(gomock.Any(), 0, models.DefaultListLimit).
		Return([]models.Author{{ID: 1, Name: "Orwell"}}, nil)

	svc := NewCatalog(mockStorage)
	got, err := svc.ListAuthors(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListAuthors(context.Background(), -1, 10)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestCatalog_DeleteAuthor(t *testing.T) {
	tests := []struct {
		name      string
		id        int64
		mockSetup func(*mocks.MockCatalogStorage)
		want      bool
		wantErr   bool
	}{
		{
			name: "Удаление вместе с книгами",
			id:   1,
			mockSetup: func(m *mocks.MockCatalogStorage) {
				m.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.EXPECT().AuthorGetByID(gomock.Any(), int64(1)).Return(models.Author{ID: 1, Name: "Orwell"}, nil)
				deleteBooks := m.EXPECT().BookDeleteByAuthor(gomock.Any(), int64(1)).Return(int64(2), nil)
				m.EXPECT().AuthorDelete(gomock.Any(), int64(1)).Return(true, nil).After(deleteBooks)
			},
			want: true,
		},
		{
			name: "Автора нет",
			id:   9,
			mockSetup: func(m *mocks.MockCatalogStorage) {
				m.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.EXPECT().AuthorGetByID(gomock.Any(), int64(9)).Return(models.Author{}, models.ErrNotFound)
			},
			want: false,
		},
		{
			name:      "Невалидный id",
			id:        0,
			mockSetup: func(m *mocks.MockCatalogStorage) {},
			want:      false,
		},
		{
			name: "Ошибка удаления книг откатывает транзакцию",
			id:   1,
			mockSetup: func(m *mocks.MockCatalogStorage) {
				m.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.EXPECT().AuthorGetByID(gomock.Any(), int64(1)).Return(models.Author{ID: 1}, nil)
				m.EXPECT().BookDeleteByAuthor(gomock.Any(), int64(1)).Return(int64(0), errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStorage := mocks.NewMockCatalogStorage(ctrl)
			tt.mockSetup(mockStorage)

			got, err := NewCatalog(mockStorage).DeleteAuthor(context.Background(), tt.id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_DeleteBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := mocks.NewMockCatalogStorage(ctrl)
	svc := NewCatalog(mockStorage)

	mockStorage.EXPECT().BookDelete(gomock.Any(), "1984", int64(1)).Return(false, nil)
	deleted, err := svc.DeleteBook(context.Background(), "1984", 1)
	require.NoError(t, err, "отсутствие книги - не ошибка")
	assert.False(t, deleted)

	mockStorage.EXPECT().BookDelete(gomock.Any(), "1984", int64(1)).Return(true, nil)
	deleted, err = svc.DeleteBook(context.Background(), "1984", 1)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCatalog_ListBooksByAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := mocks.NewMockCatalogStorage(ctrl)
	svc := NewCatalog(mockStorage)

	mockStorage.EXPECT().AuthorGetByID(gomock.Any(), int64(1)).Return(models.Author{ID: 1, Name: "Orwell"}, nil)
	mockStorage.EXPECT().BookListByAuthor(gomock.Any(), int64(1)).
		Return([]models.Book{{ID: 1, Title: "1984", Pages: 328, AuthorID: 1}}, nil)

	books, err := svc.ListBooksByAuthor(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, books, 1)

	mockStorage.EXPECT().AuthorGetByID(gomock.Any(), int64(2)).Return(models.Author{}, models.ErrNotFound)
	_, err = svc.ListBooksByAuthor(context.Background(), 2)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
