package dto

import (
	"time"

	"apodhub/internal/http-api/models"
)

// CreateCommentDTO carries the add-comment form. The binding tags mirror the
// stored column limits, so an invalid payload never reaches the store.
type CreateCommentDTO struct {
	AuthorName  string `form:"author_name" binding:"required,min=2,max=100"`
	Rating      int    `form:"rating" binding:"required,min=1,max=5"`
	CommentText string `form:"comment_text" binding:"required,min=10,max=1000"`
	CommentDate string `form:"comment_date" binding:"omitempty,datetime=2006-01-02"`
}

// ToModel builds the entity; the date defaults at creation time when absent.
func (d *CreateCommentDTO) ToModel() *models.Comment {
	comment := &models.Comment{
		AuthorName:  d.AuthorName,
		Rating:      d.Rating,
		CommentText: d.CommentText,
	}
	if d.CommentDate != "" {
		if date, err := time.Parse("2006-01-02", d.CommentDate); err == nil {
			comment.CommentDate = date
		}
	}
	return comment
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID          int64     `json:"id"`
	AuthorName  string    `json:"author_name"`
	Rating      int       `json:"rating"`
	CommentText string    `json:"comment_text"`
	CommentDate string    `json:"comment_date"`
	CreatedAt   time.Time `json:"created_at"`
	ImagePath   string    `json:"image_path,omitempty"`
	LikeCount   int       `json:"like_count"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:          comment.ID,
		AuthorName:  comment.AuthorName,
		Rating:      comment.Rating,
		CommentText: comment.CommentText,
		CommentDate: comment.CommentDate.Format("2006-01-02"),
		CreatedAt:   comment.CreatedAt,
		ImagePath:   comment.ImagePath,
		LikeCount:   comment.LikeCount(),
	}
}

// PaginatedCommentResponse for returning paginated comments
type PaginatedCommentResponse struct {
	Data        []CommentResponse `json:"data"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
	Total       int64             `json:"total"`
	TotalPages  int               `json:"total_pages"`
	HasNext     bool              `json:"has_next"`
	HasPrevious bool              `json:"has_previous"`
}

// FromPage converts a comment page into its response shape.
func FromPage(page models.Page[models.Comment]) *PaginatedCommentResponse {
	data := make([]CommentResponse, 0, len(page.Content))
	for i := range page.Content {
		data = append(data, *FromModelToCommentResponse(&page.Content[i]))
	}
	return &PaginatedCommentResponse{
		Data:        data,
		Page:        page.Page,
		PageSize:    page.Size,
		Total:       page.TotalElements,
		TotalPages:  page.TotalPages,
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
	}
}
