package contract

import (
	"context"

	"github.com/nandomoreu/mercadillo/internal/domain/entity"
)

// IArticleRepository provides methods for managing article data in the database.
type IArticleRepository interface {
	GetArticleByID(ctx context.Context, id int64) (*entity.Article, error)
	DeleteArticleByID(ctx context.Context, id int64) error
	ListArticles(ctx context.Context) ([]entity.Article, error)
}
