package contract

import (
	"context"

	"github.com/nandomoreu/mercadillo/internal/domain/entity"
)

// IArticleCache defines caching operations for the article listing.
type IArticleCache interface {
	GetListing(ctx context.Context) ([]entity.Article, bool, error)
	SetListing(ctx context.Context, articles []entity.Article) error
	InvalidateListing(ctx context.Context) error
}
