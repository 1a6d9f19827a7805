package usecase

import (
	"context"

	"github.com/nandomoreu/mercadillo/internal/apperror"
	"github.com/nandomoreu/mercadillo/internal/domain/contract"
	"github.com/nandomoreu/mercadillo/internal/domain/entity"
	usecasecontract "github.com/nandomoreu/mercadillo/internal/usecase/contract"
)

// ArticleUsecase implements ownership-checked article deletion and listing.
type ArticleUsecase struct {
	articleRepo contract.IArticleRepository
	cache       contract.IArticleCache
	logger      usecasecontract.IAppLogger
}

// NewArticleUsecase creates a new ArticleUsecase instance.
func NewArticleUsecase(articleRepo contract.IArticleRepository, logger usecasecontract.IAppLogger) *ArticleUsecase {
	return &ArticleUsecase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

// check if ArticleUsecase implements the IArticleUseCase
var _ usecasecontract.IArticleUseCase = (*ArticleUsecase)(nil)

// SetArticleCache injects an optional listing cache.
func (uc *ArticleUsecase) SetArticleCache(cache contract.IArticleCache) {
	uc.cache = cache
}

// DeleteArticle removes an article owned by the caller and returns the
// refreshed full listing so callers do not need a second round trip.
func (uc *ArticleUsecase) DeleteArticle(ctx context.Context, accountID, articleID int64) ([]entity.Article, error) {
	if articleID <= 0 {
		return nil, apperror.Validation([]apperror.FieldError{
			{Field: "articleID", Reason: "must be a positive integer"},
		})
	}

	article, err := uc.articleRepo.GetArticleByID(ctx, articleID)
	if err != nil {
		uc.logger.Errorf("failed to load article %d: %v", articleID, err)
		return nil, apperror.Transient(err)
	}
	if article == nil {
		return nil, apperror.NotFound("article", articleID)
	}
	if article.OwnerID != accountID {
		return nil, apperror.Permission("you do not have permission to delete this article")
	}

	if err := uc.articleRepo.DeleteArticleByID(ctx, articleID); err != nil {
		uc.logger.Errorf("failed to delete article %d: %v", articleID, err)
		return nil, apperror.Transient(err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateListing(ctx); err != nil {
			uc.logger.Warnf("failed to invalidate article listing cache: %v", err)
		}
	}

	return uc.listAll(ctx)
}

// ListArticles returns the full listing, served from cache when possible.
func (uc *ArticleUsecase) ListArticles(ctx context.Context) ([]entity.Article, error) {
	if uc.cache != nil {
		articles, ok, err := uc.cache.GetListing(ctx)
		if err != nil {
			uc.logger.Warnf("article listing cache read failed: %v", err)
		} else if ok {
			return articles, nil
		}
	}
	return uc.listAll(ctx)
}

func (uc *ArticleUsecase) listAll(ctx context.Context) ([]entity.Article, error) {
	articles, err := uc.articleRepo.ListArticles(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list articles: %v", err)
		return nil, apperror.Transient(err)
	}
	if uc.cache != nil {
		if err := uc.cache.SetListing(ctx, articles); err != nil {
			uc.logger.Warnf("failed to cache article listing: %v", err)
		}
	}
	return articles, nil
}
