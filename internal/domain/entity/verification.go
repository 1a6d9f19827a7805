package entity

import (
	"time"
)

// VerificationCodeLength is the exact length of every issued code.
const VerificationCodeLength = 64

// VerificationCode is a single-use token proving control of an email address.
// There is at most one live code per account: issuing a new one replaces any
// prior code for the same account.
type VerificationCode struct {
	ID        string    `bson:"_id"`
	AccountID int64     `bson:"account_id"`
	Code      string    `bson:"code"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// Expired reports whether the code is past its expiry at the given instant.
func (v *VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
