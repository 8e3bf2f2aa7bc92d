package service

import (
	"apodhub/internal/http-api/models"
	"apodhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type LikeService interface {
	Toggle(commentID int64, clientIP string) (bool, error)
	HasLiked(commentID int64, clientIP string) (bool, error)
}

type likeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) LikeService {
	return &likeService{db: db}
}

// Toggle flips the like state for the (comment, client) pair and returns the
// resulting state: true when the call liked, false when it unliked.
//
// The check-then-act runs inside one transaction so concurrent toggles for
// the same pair are serialized by the storage engine; the unique index on
// (comment_id, client_ip) turns a lost race into a rolled-back storage error
// instead of a duplicate row. A failed attempt leaves the pre-toggle state.
func (s *likeService) Toggle(commentID int64, clientIP string) (bool, error) {
	var liked bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		likes := repository.NewLikeRepository(tx)
		comments := repository.NewCommentRepository(tx)

		exists, err := likes.Exists(commentID, clientIP)
		if err != nil {
			return err
		}

		if exists {
			if _, err := likes.DeleteByCommentAndClient(commentID, clientIP); err != nil {
				return err
			}
			liked = false
			return nil
		}

		// a like must not be created for a comment that is gone
		if _, err := comments.GetByID(commentID); err != nil {
			return err
		}
		if err := likes.Create(&models.Like{CommentID: commentID, ClientIP: clientIP}); err != nil {
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// HasLiked reports the current state of the pair without changing it.
func (s *likeService) HasLiked(commentID int64, clientIP string) (bool, error) {
	return repository.NewLikeRepository(s.db).Exists(commentID, clientIP)
}
