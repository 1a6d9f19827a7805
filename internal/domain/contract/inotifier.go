package contract

import "context"

// IVerificationNotifier delivers a verification code to an email address via
// an external channel. A failed Send must abort the calling workflow.
type IVerificationNotifier interface {
	SendVerification(ctx context.Context, name, email, code string) error
}
