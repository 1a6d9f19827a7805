package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nandomoreu/mercadillo/internal/apperror"
	"github.com/nandomoreu/mercadillo/internal/handler/http/dto"
	"github.com/nandomoreu/mercadillo/internal/handler/http/middleware"
	usecasecontract "github.com/nandomoreu/mercadillo/internal/usecase/contract"
)

// ArticleHandlerInterface defines the methods for the article handler.
type ArticleHandlerInterface interface {
	DeleteArticle(*gin.Context)
	ListArticles(*gin.Context)
}

// Ensure ArticleHandler implements ArticleHandlerInterface
var _ ArticleHandlerInterface = (*ArticleHandler)(nil)

type ArticleHandler struct {
	articleUsecase usecasecontract.IArticleUseCase
}

func NewArticleHandler(articleUsecase usecasecontract.IArticleUseCase) *ArticleHandler {
	return &ArticleHandler{
		articleUsecase: articleUsecase,
	}
}

// DeleteArticle removes an article owned by the caller and responds with the
// refreshed full listing.
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "not authenticated"})
		return
	}

	articleID, err := strconv.ParseInt(c.Param("articleID"), 10, 64)
	if err != nil {
		ErrorHandler(c, apperror.Validation([]apperror.FieldError{
			{Field: "articleID", Reason: "must be a positive integer"},
		}))
		return
	}

	articles, err := h.articleUsecase.DeleteArticle(c.Request.Context(), accountID, articleID)
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, articles)
}

// ListArticles returns the full article listing.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.articleUsecase.ListArticles(c.Request.Context())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, articles)
}
