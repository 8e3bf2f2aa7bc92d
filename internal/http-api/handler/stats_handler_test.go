package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"apodhub/internal/http-api/handler"
	"apodhub/internal/http-api/models"
	"apodhub/internal/http-api/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupStatsRouter(comments *MockCommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.NewStatsHandler(comments).RegisterRoutes(r.Group("/api"))
	return r
}

func TestStatsHandler_Stats(t *testing.T) {
	comments := new(MockCommentService)
	r := setupStatsRouter(comments)

	comments.On("CountAll").Return(int64(12), nil).Once()
	comments.On("CountByDate", mock.Anything).Return(int64(3), nil).Once()
	comments.On("TopRated").Return(&models.Comment{ID: 1, AuthorName: "Carl", Rating: 5}, nil).Once()
	comments.On("MostLiked").Return(&models.Comment{ID: 2, AuthorName: "Vera", Rating: 4}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["total_comments"])
	assert.Equal(t, float64(3), data["today_comments"])
	assert.Equal(t, "Carl", data["top_rated"].(map[string]interface{})["author_name"])
	assert.Equal(t, "Vera", data["most_liked"].(map[string]interface{})["author_name"])

	comments.AssertExpectations(t)
}

func TestStatsHandler_EmptyStore(t *testing.T) {
	comments := new(MockCommentService)
	r := setupStatsRouter(comments)

	comments.On("CountAll").Return(int64(0), nil).Once()
	comments.On("CountByDate", mock.Anything).Return(int64(0), nil).Once()
	comments.On("TopRated").Return(nil, repository.ErrNotFound).Once()
	comments.On("MostLiked").Return(nil, repository.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Nil(t, data["top_rated"])
	assert.Nil(t, data["most_liked"])
}
