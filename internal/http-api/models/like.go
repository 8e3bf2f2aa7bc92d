package models

import "time"

// Like records one client's endorsement of a comment. The unique index on
// (comment_id, client_ip) backstops the one-like-per-client invariant that
// the toggle protocol enforces.
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CommentID int64     `json:"comment_id" gorm:"not null;uniqueIndex:idx_likes_comment_client"`
	ClientIP  string    `json:"client_ip" gorm:"size:64;not null;uniqueIndex:idx_likes_comment_client"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Like) TableName() string {
	return "likes"
}
