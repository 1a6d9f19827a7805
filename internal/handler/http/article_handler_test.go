package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandomoreu/mercadillo/internal/apperror"
	"github.com/nandomoreu/mercadillo/internal/domain/entity"
	handler "github.com/nandomoreu/mercadillo/internal/handler/http"
	"github.com/nandomoreu/mercadillo/internal/handler/http/mocks"
)

func setupArticleRouter(h handler.ArticleHandlerInterface) *gin.Engine {
	r := gin.New()
	r.GET("/articles", h.ListArticles)
	r.DELETE("/articles/:articleID", asAccount(1), h.DeleteArticle)
	return r
}

func TestDeleteArticle_RespondsWithListing(t *testing.T) {
	mockUsecase := mocks.NewMockArticleUsecase()
	r := setupArticleRouter(handler.NewArticleHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/articles/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), mockUsecase.LastAccountID)
	assert.Equal(t, int64(5), mockUsecase.LastArticleID)

	var listing []entity.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing, 2)
}

func TestDeleteArticle_PermissionDenied(t *testing.T) {
	mockUsecase := mocks.NewMockArticleUsecase()
	mockUsecase.FailDelete = apperror.Permission("you do not have permission to delete this article")
	r := setupArticleRouter(handler.NewArticleHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/articles/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "permission")
}

func TestDeleteArticle_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockArticleUsecase()
	mockUsecase.FailDelete = apperror.NotFound("article", 99)
	r := setupArticleRouter(handler.NewArticleHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/articles/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteArticle_MalformedID(t *testing.T) {
	mockUsecase := mocks.NewMockArticleUsecase()
	r := setupArticleRouter(handler.NewArticleHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/articles/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "positive integer")
}

func TestListArticles(t *testing.T) {
	mockUsecase := mocks.NewMockArticleUsecase()
	r := setupArticleRouter(handler.NewArticleHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "old bicycle")
}
