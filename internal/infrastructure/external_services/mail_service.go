package external_services

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/nandomoreu/mercadillo/internal/domain/contract"
)

// smtp attributes
type VerificationMailer struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string
	BaseURL     string
}

// VerificationMailer factory
func NewVerificationMailer(host, port, username, appPassword, from, baseURL string) *VerificationMailer {
	return &VerificationMailer{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
		BaseURL:     baseURL,
	}
}

// make sure VerificationMailer implements contract.IVerificationNotifier
var _ contract.IVerificationNotifier = (*VerificationMailer)(nil)

// SendVerification delivers the activation link carrying the code to the
// given address. Any SMTP failure is returned to the caller, which must abort
// its workflow.
func (vm *VerificationMailer) SendVerification(ctx context.Context, name, email, code string) error {
	activationLink := fmt.Sprintf("%s/api/v1/accounts/activate?code=%s", vm.BaseURL, code)
	subject := "Verify your email address"
	body := fmt.Sprintf("Hello %s,\n\nplease click the following link to verify your email address: %s\n\nThe link expires in 24 hours.", name, activationLink)

	msg := []byte(
		fmt.Sprintf(
			"To: %s\r\n"+
				"From: %s\r\n"+
				"Subject: %s\r\n"+
				"\r\n"+
				"%s\r\n",
			email, vm.From, subject, body,
		),
	)
	auth := smtp.PlainAuth("", vm.Username, vm.AppPassword, vm.Host)
	addr := fmt.Sprintf("%s:%s", vm.Host, vm.Port)
	if err := smtp.SendMail(addr, auth, vm.From, []string{email}, msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}
