package repository

import (
	"testing"
	"time"

	"apodhub/internal/http-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, one in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Comment{}, &models.Like{}))
	return db
}

func seedComment(t *testing.T, db *gorm.DB, author, text string, rating int, created time.Time) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		AuthorName:  author,
		Rating:      rating,
		CommentText: text,
		CreatedAt:   created,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func seedLike(t *testing.T, db *gorm.DB, commentID int64, clientIP string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Like{CommentID: commentID, ClientIP: clientIP}).Error)
}
