package service

import (
	"mime/multipart"
	"testing"
	"time"

	"apodhub/internal/http-api/models"
	"apodhub/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MOCK REPOSITORY ---

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *MockCommentRepo) GetByID(id int64) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepo) Delete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockCommentRepo) GetAll(p models.Pageable) ([]models.Comment, int64, error) {
	args := m.Called(p)
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepo) GetByDate(date time.Time, p models.Pageable) ([]models.Comment, int64, error) {
	args := m.Called(date, p)
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepo) GetToday(p models.Pageable) ([]models.Comment, int64, error) {
	args := m.Called(p)
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepo) GetAllSortedByLikes(p models.Pageable) ([]models.Comment, int64, error) {
	args := m.Called(p)
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepo) Search(term string, p models.Pageable) ([]models.Comment, int64, error) {
	args := m.Called(term, p)
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepo) SearchSuggestions(term string, limit int) ([]string, error) {
	args := m.Called(term, limit)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCommentRepo) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepo) CountByDate(date time.Time) (int64, error) {
	args := m.Called(date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepo) TopRated() (*models.Comment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepo) MostLiked() (*models.Comment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

// --- MOCK FILE STORAGE ---

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Store(file *multipart.FileHeader) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Delete(filename string) error {
	return m.Called(filename).Error(0)
}

// --- TESTS ---

var noComments = []models.Comment{}

func TestCommentService_GetPageDispatch(t *testing.T) {
	p := models.NewPageable(0, 10, models.SortCreatedAt, "DESC")
	likesPageable := models.NewPageable(0, 10, models.SortLikes, "DESC")
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	t.Run("SearchWinsOverEverything", func(t *testing.T) {
		repo := new(MockCommentRepo)
		svc := NewCommentService(repo, new(MockFileStorage))
		repo.On("Search", "nebula", p).Return(noComments, int64(0), nil).Once()

		_, err := svc.GetPage(FilterAll, &day, "  nebula  ", p)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("DateFilterWithDate", func(t *testing.T) {
		repo := new(MockCommentRepo)
		svc := NewCommentService(repo, new(MockFileStorage))
		repo.On("GetByDate", day, p).Return(noComments, int64(0), nil).Once()

		_, err := svc.GetPage(FilterDate, &day, "", p)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("DateFilterWithoutDateFallsBackToToday", func(t *testing.T) {
		repo := new(MockCommentRepo)
		svc := NewCommentService(repo, new(MockFileStorage))
		repo.On("GetToday", p).Return(noComments, int64(0), nil).Once()

		_, err := svc.GetPage(FilterDate, nil, "", p)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("AllSortedByLikesUsesLikeCountQuery", func(t *testing.T) {
		repo := new(MockCommentRepo)
		svc := NewCommentService(repo, new(MockFileStorage))
		repo.On("GetAllSortedByLikes", likesPageable).Return(noComments, int64(0), nil).Once()

		_, err := svc.GetPage(FilterAll, nil, "", likesPageable)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("AllUsesGenericPaginator", func(t *testing.T) {
		repo := new(MockCommentRepo)
		svc := NewCommentService(repo, new(MockFileStorage))
		repo.On("GetAll", p).Return(noComments, int64(0), nil).Once()

		_, err := svc.GetPage(FilterAll, nil, "", p)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("DefaultIsToday", func(t *testing.T) {
		repo := new(MockCommentRepo)
		svc := NewCommentService(repo, new(MockFileStorage))
		repo.On("GetToday", p).Return(noComments, int64(0), nil).Twice()

		_, err := svc.GetPage(FilterToday, nil, "", p)
		require.NoError(t, err)
		_, err = svc.GetPage("bogus", nil, "", p)
		require.NoError(t, err)

		repo.AssertExpectations(t)
	})
}

func TestCommentService_GetPageAssemblesMetadata(t *testing.T) {
	repo := new(MockCommentRepo)
	svc := NewCommentService(repo, new(MockFileStorage))
	p := models.NewPageable(1, 2, models.SortCreatedAt, "DESC")

	content := []models.Comment{{ID: 3}, {ID: 4}}
	repo.On("GetAll", p).Return(content, int64(5), nil).Once()

	page, err := svc.GetPage(FilterAll, nil, "", p)
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrevious)
	assert.Len(t, page.Content, 2)
}

func TestCommentService_DeleteRemovesStoredImage(t *testing.T) {
	repo := new(MockCommentRepo)
	storage := new(MockFileStorage)
	svc := NewCommentService(repo, storage)

	repo.On("GetByID", int64(7)).Return(&models.Comment{ID: 7, ImagePath: "abc.jpg"}, nil).Once()
	storage.On("Delete", "abc.jpg").Return(nil).Once()
	repo.On("Delete", int64(7)).Return(nil).Once()

	require.NoError(t, svc.Delete(7))

	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestCommentService_DeleteMissingComment(t *testing.T) {
	repo := new(MockCommentRepo)
	storage := new(MockFileStorage)
	svc := NewCommentService(repo, storage)

	repo.On("GetByID", int64(7)).Return(nil, repository.ErrNotFound).Once()

	err := svc.Delete(7)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	storage.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCommentService_SearchSuggestionsBlankTerm(t *testing.T) {
	repo := new(MockCommentRepo)
	svc := NewCommentService(repo, new(MockFileStorage))

	suggestions, err := svc.SearchSuggestions("   ", 5)

	require.NoError(t, err)
	assert.Empty(t, suggestions)
	repo.AssertNotCalled(t, "SearchSuggestions", mock.Anything, mock.Anything)
}
