package repository

import (
	"errors"
	"strings"
	"time"

	"apodhub/internal/http-api/models"

	"gorm.io/gorm"
)

// likeCountExpr orders by the like count computed on read. No persisted
// counter column exists, so the count can never drift from the like rows.
const likeCountExpr = "(SELECT COUNT(*) FROM likes WHERE likes.comment_id = comments.id)"

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int64) (*models.Comment, error)
	Delete(id int64) error
	GetAll(p models.Pageable) ([]models.Comment, int64, error)
	GetByDate(date time.Time, p models.Pageable) ([]models.Comment, int64, error)
	GetToday(p models.Pageable) ([]models.Comment, int64, error)
	GetAllSortedByLikes(p models.Pageable) ([]models.Comment, int64, error)
	Search(term string, p models.Pageable) ([]models.Comment, int64, error)
	SearchSuggestions(term string, limit int) ([]string, error)
	CountAll() (int64, error)
	CountByDate(date time.Time) (int64, error)
	TopRated() (*models.Comment, error)
	MostLiked() (*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment; the ID is assigned by the database.
func (r *commentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return storageErr("create comment", err)
	}
	return nil
}

// GetByID retrieves a comment with its like collection eagerly loaded.
func (r *commentRepository) GetByID(id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", id).
		Preload("Likes").
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get comment", err)
	}
	return &comment, nil
}

// Delete removes a comment and its likes. The cascade runs explicitly inside
// one transaction so the likes can never outlive their comment. Deleting an
// absent id is a no-op, not an error.
func (r *commentRepository) Delete(id int64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Comment{}).Error
	})
	if err != nil {
		return storageErr("delete comment", err)
	}
	return nil
}

// paginate applies the validated ordering plus a stable tie-break, so pages
// stay consistent when the primary sort key repeats.
func paginate(q *gorm.DB, p models.Pageable) *gorm.DB {
	return q.Order(p.OrderClause()).
		Order("created_at DESC, id DESC").
		Limit(p.Size).
		Offset(p.Offset())
}

// GetAll retrieves one page of all comments plus the independently counted
// total.
func (r *commentRepository) GetAll(p models.Pageable) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Count(&total).Error; err != nil {
		return nil, 0, storageErr("count comments", err)
	}

	var comments []models.Comment
	err := paginate(r.db.Preload("Likes"), p).Find(&comments).Error
	if err != nil {
		return nil, 0, storageErr("list comments", err)
	}
	return comments, total, nil
}

// GetByDate retrieves one page of comments for a calendar day.
func (r *commentRepository) GetByDate(date time.Time, p models.Pageable) ([]models.Comment, int64, error) {
	day := models.DateOf(date)

	total, err := r.CountByDate(day)
	if err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err = paginate(r.db.Preload("Likes").Where("comment_date = ?", day), p).
		Find(&comments).Error
	if err != nil {
		return nil, 0, storageErr("list comments by date", err)
	}
	return comments, total, nil
}

// GetToday retrieves one page of today's comments.
func (r *commentRepository) GetToday(p models.Pageable) ([]models.Comment, int64, error) {
	return r.GetByDate(time.Now(), p)
}

// GetAllSortedByLikes orders by the computed like count in the descriptor's
// direction. The total is the unfiltered comment count.
func (r *commentRepository) GetAllSortedByLikes(p models.Pageable) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Count(&total).Error; err != nil {
		return nil, 0, storageErr("count comments", err)
	}

	var comments []models.Comment
	err := r.db.Preload("Likes").
		Order(likeCountExpr + " " + p.Direction).
		Order("created_at DESC, id DESC").
		Limit(p.Size).
		Offset(p.Offset()).
		Find(&comments).Error
	if err != nil {
		return nil, 0, storageErr("list comments by likes", err)
	}
	return comments, total, nil
}

// searchFilter matches author name or comment text case-insensitively by
// substring. Callers reject blank terms before reaching here.
func searchFilter(term string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(term) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(author_name) LIKE ? OR LOWER(comment_text) LIKE ?", pattern, pattern)
	}
}

// Search retrieves one page of comments matching the term, with the total
// counted under the same filter.
func (r *commentRepository) Search(term string, p models.Pageable) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Scopes(searchFilter(term)).Count(&total).Error; err != nil {
		return nil, 0, storageErr("count search results", err)
	}

	var comments []models.Comment
	err := paginate(r.db.Preload("Likes").Scopes(searchFilter(term)), p).
		Find(&comments).Error
	if err != nil {
		return nil, 0, storageErr("search comments", err)
	}
	return comments, total, nil
}

// SearchSuggestions returns distinct author names matching the term,
// alphabetical, capped at limit.
func (r *commentRepository) SearchSuggestions(term string, limit int) ([]string, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var names []string
	err := r.db.Model(&models.Comment{}).
		Distinct("author_name").
		Where("LOWER(author_name) LIKE ?", pattern).
		Order("author_name").
		Limit(limit).
		Pluck("author_name", &names).Error
	if err != nil {
		return nil, storageErr("search suggestions", err)
	}
	return names, nil
}

func (r *commentRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Count(&count).Error; err != nil {
		return 0, storageErr("count comments", err)
	}
	return count, nil
}

func (r *commentRepository) CountByDate(date time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("comment_date = ?", models.DateOf(date)).
		Count(&count).Error
	if err != nil {
		return 0, storageErr("count comments by date", err)
	}
	return count, nil
}

// TopRated returns the highest-rated comment; among equals the newest wins.
func (r *commentRepository) TopRated() (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Likes").
		Order("rating DESC, created_at DESC, id DESC").
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("top rated comment", err)
	}
	return &comment, nil
}

// MostLiked returns the comment with the most likes; among equals the newest
// wins.
func (r *commentRepository) MostLiked() (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Likes").
		Order(likeCountExpr + " DESC").
		Order("created_at DESC, id DESC").
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("most liked comment", err)
	}
	return &comment, nil
}
