package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nandomoreu/mercadillo/internal/domain/contract"
	"github.com/nandomoreu/mercadillo/internal/domain/entity"
)

// AccountRepository persists accounts and their verification codes. Lookups
// return (nil, nil) when no document matches, so callers can tell "absent"
// apart from storage failures.
type AccountRepository struct {
	accounts      *mongo.Collection
	verifications *mongo.Collection
	counters      *mongo.Collection
}

var _ contract.IAccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		accounts:      db.Collection("accounts"),
		verifications: db.Collection("verification_codes"),
		counters:      db.Collection("counters"),
	}
}

// nextID allocates the next numeric account id from the counters collection.
func (r *AccountRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "accounts"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate account id: %w", err)
	}
	return counter.Seq, nil
}

func (r *AccountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	account.ID = id
	if _, err := r.accounts.InsertOne(ctx, account); err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

func (r *AccountRepository) GetAccountByID(ctx context.Context, id int64) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) GetAccountByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*entity.Account, error) {
	var account entity.Account
	err := r.accounts.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// UpdateProfile persists the full field set as a single update.
func (r *AccountRepository) UpdateProfile(ctx context.Context, id int64, fields entity.ProfileFields) error {
	update := bson.M{"$set": bson.M{
		"name":          fields.Name,
		"surname":       fields.Surname,
		"email":         fields.Email,
		"username":      fields.Username,
		"locale":        fields.Locale,
		"password_hash": fields.PasswordHash,
		"updated_at":    time.Now(),
	}}
	result, err := r.accounts.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update account %d: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account %d not found", id)
	}
	return nil
}

// ReplaceVerificationCode upserts the live code keyed by account, so the
// delete-old-then-insert-new window of two separate writes never exists.
func (r *AccountRepository) ReplaceVerificationCode(ctx context.Context, code *entity.VerificationCode) error {
	update := bson.M{
		"$set": bson.M{
			"code":       code.Code,
			"created_at": code.CreatedAt,
			"expires_at": code.ExpiresAt,
		},
		"$setOnInsert": bson.M{"_id": code.ID},
	}
	_, err := r.verifications.UpdateOne(ctx,
		bson.M{"account_id": code.AccountID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to replace verification code for account %d: %w", code.AccountID, err)
	}
	return nil
}

func (r *AccountRepository) GetActiveVerification(ctx context.Context, code string) (*entity.VerificationCode, error) {
	filter := bson.M{
		"code":       code,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	}
	var verification entity.VerificationCode
	err := r.verifications.FindOne(ctx, filter).Decode(&verification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &verification, nil
}

func (r *AccountRepository) MarkAccountActive(ctx context.Context, id int64) error {
	update := bson.M{"$set": bson.M{"is_active": true, "updated_at": time.Now()}}
	result, err := r.accounts.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to activate account %d: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account %d not found", id)
	}
	return nil
}

func (r *AccountRepository) DeleteVerification(ctx context.Context, id string) error {
	if _, err := r.verifications.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete verification code %s: %w", id, err)
	}
	return nil
}

// EnsureIndexes creates the unique indexes backing the email and username
// invariants and the per-account verification-code constraint.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.accounts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create account indexes: %w", err)
	}
	_, err = r.verifications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "account_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create verification indexes: %w", err)
	}
	return nil
}
