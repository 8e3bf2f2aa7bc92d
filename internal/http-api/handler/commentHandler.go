package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"apodhub/internal/http-api/dto"
	"apodhub/internal/http-api/middleware"
	"apodhub/internal/http-api/models"
	"apodhub/internal/http-api/repository"
	"apodhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const suggestionLimit = 5

type CommentHandler struct {
	commentService service.CommentService
	likeService    service.LikeService
	storage        service.FileStorageService
}

func NewCommentHandler(commentService service.CommentService, likeService service.LikeService, storage service.FileStorageService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		likeService:    likeService,
		storage:        storage,
	}
}

// RegisterRoutes registers comment-related routes. Write endpoints sit
// behind the supplied rate limiter.
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	comments := router.Group("/comments")
	{
		comments.GET("", h.List)
		comments.POST("", limit, h.Create)
		comments.GET("/:id", h.GetByID)
		comments.DELETE("/:id", h.Delete)
		comments.POST("/:id/like", limit, h.ToggleLike)
	}

	router.GET("/search/suggestions", h.SearchSuggestions)
}

// List retrieves one page of comments
// GET /api/comments?page=0&size=10&sortBy=createdAt&direction=DESC&filter=today&date=2026-08-30&search=term
func (h *CommentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if size > 100 {
		size = 100
	}
	sortBy := c.DefaultQuery("sortBy", models.DefaultSort)
	direction := c.DefaultQuery("direction", models.DefaultDirection)
	filter := c.DefaultQuery("filter", service.FilterToday)
	search := c.Query("search")

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	pageable := models.NewPageable(page, size, sortBy, direction)
	result, err := h.commentService.GetPage(filter, date, search, pageable)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.FromPage(result),
		"message": "Comments loaded successfully",
	})
}

// Create adds a new comment, optionally with an uploaded image
// POST /api/comments (multipart form)
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentDTO
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	comment := req.ToModel()

	if file, err := c.FormFile("image"); err == nil && file != nil {
		filename, err := h.storage.Store(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error storing image"})
			return
		}
		comment.ImagePath = filename
	}

	if err := h.commentService.Create(comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error saving comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    dto.FromModelToCommentResponse(comment),
		"message": "Comment saved successfully",
	})
}

// GetByID retrieves a single comment
// GET /api/comments/:id
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid comment ID"})
		return
	}

	comment, err := h.commentService.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.FromModelToCommentResponse(comment)})
}

// Delete removes a comment together with its likes and stored image
// DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid comment ID"})
		return
	}

	if err := h.commentService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment deleted successfully"})
}

// ToggleLike flips the caller's like on a comment and returns the new state
// POST /api/comments/:id/like
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid comment ID"})
		return
	}

	clientIP := middleware.ClientIdentity(c)
	liked, err := h.likeService.Toggle(id, clientIP)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error toggling like"})
		return
	}

	comment, err := h.commentService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading like count"})
		return
	}

	message := "Unliked!"
	if liked {
		message = "Liked!"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"liked":      liked,
		"like_count": comment.LikeCount(),
		"message":    message,
	})
}

// SearchSuggestions returns matching author names for autocomplete
// GET /api/search/suggestions?query=term
func (h *CommentHandler) SearchSuggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "suggestions": []string{}})
		return
	}

	suggestions, err := h.commentService.SearchSuggestions(query, suggestionLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading suggestions"})
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "suggestions": suggestions})
}
