package service

import (
	"strings"
	"time"

	"apodhub/internal/http-api/models"
	"apodhub/internal/http-api/repository"
)

// Filter tokens selecting which comment subset a page is drawn from.
const (
	FilterToday = "today"
	FilterAll   = "all"
	FilterDate  = "date"
)

type CommentService interface {
	Create(comment *models.Comment) error
	GetByID(id int64) (*models.Comment, error)
	Delete(id int64) error
	GetPage(filter string, date *time.Time, search string, p models.Pageable) (models.Page[models.Comment], error)
	CountAll() (int64, error)
	CountByDate(date time.Time) (int64, error)
	TopRated() (*models.Comment, error)
	MostLiked() (*models.Comment, error)
	SearchSuggestions(term string, limit int) ([]string, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	storage     FileStorageService
}

func NewCommentService(commentRepo repository.CommentRepository, storage FileStorageService) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		storage:     storage,
	}
}

// Create persists a validated comment payload.
func (s *commentService) Create(comment *models.Comment) error {
	return s.commentRepo.Create(comment)
}

func (s *commentService) GetByID(id int64) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// Delete removes the comment, its likes, and its stored image file if any.
func (s *commentService) Delete(id int64) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}

	if comment.ImagePath != "" {
		if err := s.storage.Delete(comment.ImagePath); err != nil {
			return err
		}
	}
	return s.commentRepo.Delete(id)
}

// GetPage dispatches the filter/sort tokens to the matching repository query.
// Precedence: search term, then filter=date, then filter=all (routed to the
// like-count query when sorting by likes), then the default of today.
func (s *commentService) GetPage(filter string, date *time.Time, search string, p models.Pageable) (models.Page[models.Comment], error) {
	var (
		content []models.Comment
		total   int64
		err     error
	)

	term := strings.TrimSpace(search)
	switch {
	case term != "":
		content, total, err = s.commentRepo.Search(term, p)
	case filter == FilterDate && date != nil:
		content, total, err = s.commentRepo.GetByDate(*date, p)
	case filter == FilterAll && p.SortBy == models.SortLikes:
		content, total, err = s.commentRepo.GetAllSortedByLikes(p)
	case filter == FilterAll:
		content, total, err = s.commentRepo.GetAll(p)
	default:
		// "today", "date" without a date, or anything unrecognized
		content, total, err = s.commentRepo.GetToday(p)
	}
	if err != nil {
		return models.Page[models.Comment]{}, err
	}
	return models.NewPage(content, p.Page, p.Size, total), nil
}

func (s *commentService) CountAll() (int64, error) {
	return s.commentRepo.CountAll()
}

func (s *commentService) CountByDate(date time.Time) (int64, error) {
	return s.commentRepo.CountByDate(date)
}

func (s *commentService) TopRated() (*models.Comment, error) {
	return s.commentRepo.TopRated()
}

func (s *commentService) MostLiked() (*models.Comment, error) {
	return s.commentRepo.MostLiked()
}

// SearchSuggestions returns matching author names for autocomplete. Blank
// terms yield no suggestions without touching the store.
func (s *commentService) SearchSuggestions(term string, limit int) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	return s.commentRepo.SearchSuggestions(term, limit)
}
