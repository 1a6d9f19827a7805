package usecasecontract

import "time"

// IConfigProvider exposes the configuration values the usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetVerificationCodeExpiry() time.Duration
}
