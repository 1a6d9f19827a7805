package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nandomoreu/mercadillo/internal/domain/contract"
	"github.com/nandomoreu/mercadillo/internal/domain/entity"
)

type ArticleRepository struct {
	articles *mongo.Collection
}

var _ contract.IArticleRepository = (*ArticleRepository)(nil)

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{articles: db.Collection("articles")}
}

func (r *ArticleRepository) GetArticleByID(ctx context.Context, id int64) (*entity.Article, error) {
	var article entity.Article
	err := r.articles.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepository) DeleteArticleByID(ctx context.Context, id int64) error {
	result, err := r.articles.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete article %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("article %d not found", id)
	}
	return nil
}

func (r *ArticleRepository) ListArticles(ctx context.Context) ([]entity.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.articles.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer cursor.Close(ctx)

	articles := []entity.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}
	return articles, nil
}
