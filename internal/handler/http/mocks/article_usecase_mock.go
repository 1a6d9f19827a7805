package mocks

import (
	"context"

	"github.com/nandomoreu/mercadillo/internal/domain/entity"
	usecasecontract "github.com/nandomoreu/mercadillo/internal/usecase/contract"
)

// MockArticleUsecase is a mock implementation of the IArticleUseCase interface
type MockArticleUsecase struct {
	// Control mock behavior
	FailDelete error
	FailList   error

	// Return values
	MockListing []entity.Article

	// Captured inputs
	LastAccountID int64
	LastArticleID int64
}

// Ensure MockArticleUsecase implements the interface required by the handler
var _ usecasecontract.IArticleUseCase = (*MockArticleUsecase)(nil)

func NewMockArticleUsecase() *MockArticleUsecase {
	return &MockArticleUsecase{
		MockListing: []entity.Article{
			{ID: 2, OwnerID: 1, Title: "old bicycle", Price: 40},
			{ID: 3, OwnerID: 2, Title: "bookshelf", Price: 25},
		},
	}
}

func (m *MockArticleUsecase) DeleteArticle(ctx context.Context, accountID, articleID int64) ([]entity.Article, error) {
	m.LastAccountID = accountID
	m.LastArticleID = articleID
	if m.FailDelete != nil {
		return nil, m.FailDelete
	}
	return m.MockListing, nil
}

func (m *MockArticleUsecase) ListArticles(ctx context.Context) ([]entity.Article, error) {
	if m.FailList != nil {
		return nil, m.FailList
	}
	return m.MockListing, nil
}
