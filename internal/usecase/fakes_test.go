package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/nandomoreu/mercadillo/internal/domain/contract"
	"github.com/nandomoreu/mercadillo/internal/domain/entity"
)

// fakeAccountRepo is an in-memory IAccountRepository recording mutations so
// tests can assert exactly what was persisted.
type fakeAccountRepo struct {
	accounts      map[int64]*entity.Account
	verifications map[int64]*entity.VerificationCode
	updates       []entity.ProfileFields
	failUpdate    error
	failReplace   error
	nextID        int64
}

var _ contract.IAccountRepository = (*fakeAccountRepo)(nil)

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{
		accounts:      make(map[int64]*entity.Account),
		verifications: make(map[int64]*entity.VerificationCode),
		nextID:        1,
	}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
		if a.ID >= repo.nextID {
			repo.nextID = a.ID + 1
		}
	}
	return repo
}

func (r *fakeAccountRepo) CreateAccount(ctx context.Context, account *entity.Account) error {
	account.ID = r.nextID
	r.nextID++
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) GetAccountByID(ctx context.Context, id int64) (*entity.Account, error) {
	if a, ok := r.accounts[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetAccountByUsername(ctx context.Context, username string) (*entity.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) UpdateProfile(ctx context.Context, id int64, fields entity.ProfileFields) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	account, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account %d not found", id)
	}
	account.Name = fields.Name
	account.Surname = fields.Surname
	account.Email = fields.Email
	account.Username = fields.Username
	account.Locale = fields.Locale
	account.PasswordHash = fields.PasswordHash
	r.updates = append(r.updates, fields)
	return nil
}

func (r *fakeAccountRepo) ReplaceVerificationCode(ctx context.Context, code *entity.VerificationCode) error {
	if r.failReplace != nil {
		return r.failReplace
	}
	copied := *code
	r.verifications[code.AccountID] = &copied
	return nil
}

func (r *fakeAccountRepo) GetActiveVerification(ctx context.Context, code string) (*entity.VerificationCode, error) {
	for _, v := range r.verifications {
		if v.Code == code {
			copied := *v
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) MarkAccountActive(ctx context.Context, id int64) error {
	account, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account %d not found", id)
	}
	account.IsActive = true
	return nil
}

func (r *fakeAccountRepo) DeleteVerification(ctx context.Context, id string) error {
	for accountID, v := range r.verifications {
		if v.ID == id {
			delete(r.verifications, accountID)
			return nil
		}
	}
	return nil
}

// fakeNotifier records deliveries and can be told to fail.
type fakeNotifier struct {
	sent []sentVerification
	fail error
}

type sentVerification struct {
	Name  string
	Email string
	Code  string
}

var _ contract.IVerificationNotifier = (*fakeNotifier)(nil)

func (n *fakeNotifier) SendVerification(ctx context.Context, name, email, code string) error {
	if n.fail != nil {
		return n.fail
	}
	n.sent = append(n.sent, sentVerification{Name: name, Email: email, Code: code})
	return nil
}

// fakeHasher produces deterministic hashes so tests can assert rotation.
type fakeHasher struct{}

var _ contract.IHasher = (*fakeHasher)(nil)

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// fakeCodeGen hands out sequential codes of the requested length.
type fakeCodeGen struct {
	calls int
}

var _ contract.ICodeGenerator = (*fakeCodeGen)(nil)

func (g *fakeCodeGen) GenerateCode(length int) (string, error) {
	g.calls++
	seq := fmt.Sprintf("%d", g.calls)
	return strings.Repeat("a", length-len(seq)) + seq, nil
}

type fakeUUIDGen struct {
	calls int
}

var _ contract.IUUIDGenerator = (*fakeUUIDGen)(nil)

func (g *fakeUUIDGen) NewUUID() string {
	g.calls++
	return fmt.Sprintf("uuid-%d", g.calls)
}
