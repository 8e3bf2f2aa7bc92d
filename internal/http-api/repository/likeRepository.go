package repository

import (
	"apodhub/internal/http-api/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Exists(commentID int64, clientIP string) (bool, error)
	Create(like *models.Like) error
	DeleteByCommentAndClient(commentID int64, clientIP string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository wraps a storage handle. Passing a transaction handle
// scopes every operation to that transaction, which is how the toggle
// protocol keeps its check-then-act atomic.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Exists reports whether the (comment, client) pair has a like row.
func (r *likeRepository) Exists(commentID int64, clientIP string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("comment_id = ? AND client_ip = ?", commentID, clientIP).
		Count(&count).Error
	if err != nil {
		return false, storageErr("check like", err)
	}
	return count > 0, nil
}

func (r *likeRepository) Create(like *models.Like) error {
	if err := r.db.Create(like).Error; err != nil {
		return storageErr("create like", err)
	}
	return nil
}

// DeleteByCommentAndClient removes the matching like row and returns the
// number removed (0 or 1) so the caller can detect a no-op.
func (r *likeRepository) DeleteByCommentAndClient(commentID int64, clientIP string) (int64, error) {
	result := r.db.Where("comment_id = ? AND client_ip = ?", commentID, clientIP).
		Delete(&models.Like{})
	if result.Error != nil {
		return 0, storageErr("delete like", result.Error)
	}
	return result.RowsAffected, nil
}
