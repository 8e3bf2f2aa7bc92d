package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AuthorName  string    `json:"author_name" gorm:"size:100;not null"`
	Rating      int       `json:"rating" gorm:"not null"`
	CommentText string    `json:"comment_text" gorm:"not null;type:text"`
	CommentDate time.Time `json:"comment_date" gorm:"type:date;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	ImagePath   string    `json:"image_path,omitempty"`

	// Associations
	Likes []Like `json:"likes,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}

// LikeCount is computed from the loaded association, never stored.
func (c *Comment) LikeCount() int {
	return len(c.Likes)
}

// BeforeCreate defaults the comment date to today and normalizes it to a
// calendar day so date-filtered queries compare exact values.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.CommentDate.IsZero() {
		c.CommentDate = DateOf(time.Now())
	} else {
		c.CommentDate = DateOf(c.CommentDate)
	}
	return nil
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
