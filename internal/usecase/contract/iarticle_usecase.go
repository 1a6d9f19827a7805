package usecasecontract

import (
	"context"

	"github.com/nandomoreu/mercadillo/internal/domain/entity"
)

// IArticleUseCase defines the interface for article-related operations.
type IArticleUseCase interface {
	// DeleteArticle removes the article after an ownership check and returns
	// the refreshed full listing, saving callers a second round trip.
	DeleteArticle(ctx context.Context, accountID, articleID int64) ([]entity.Article, error)
	ListArticles(ctx context.Context) ([]entity.Article, error)
}
