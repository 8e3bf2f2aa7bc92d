package handler

import (
	"errors"
	"net/http"
	"time"

	"apodhub/internal/http-api/dto"
	"apodhub/internal/http-api/repository"
	"apodhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	commentService service.CommentService
}

func NewStatsHandler(commentService service.CommentService) *StatsHandler {
	return &StatsHandler{commentService: commentService}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.Stats)
}

// Stats returns aggregate comment statistics
// GET /api/stats
func (h *StatsHandler) Stats(c *gin.Context) {
	total, err := h.commentService.CountAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading stats"})
		return
	}

	today, err := h.commentService.CountByDate(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading stats"})
		return
	}

	// an empty store simply has no top entries
	var topRated, mostLiked *dto.CommentResponse

	if comment, err := h.commentService.TopRated(); err == nil {
		topRated = dto.FromModelToCommentResponse(comment)
	} else if !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading stats"})
		return
	}

	if comment, err := h.commentService.MostLiked(); err == nil {
		mostLiked = dto.FromModelToCommentResponse(comment)
	} else if !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_comments": total,
			"today_comments": today,
			"top_rated":      topRated,
			"most_liked":     mostLiked,
		},
	})
}
