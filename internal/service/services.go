// Package service holds the business logic of the auth service: account
// lifecycle, session tokens, email verification, two-factor enrollment and
// outbound mail. Services consume repositories from the store package and are
// consumed by the HTTP handlers; neither side knows about the other.
package service

import (
	"github.com/formit/auth-service/internal/config"
	"github.com/formit/auth-service/internal/crypto"
	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/internal/mail"
	"github.com/formit/auth-service/internal/store"
	"github.com/formit/auth-service/internal/totp"
)

// Services aggregates every business-logic service behind one handle the
// transport layer gets injected with.
type Services struct {
	AuthService
	OTPService
	MailService
}

// NewServices builds the full service graph on top of the given storages and
// configuration: bcrypt hashing, the TOTP engine labelled with the token
// issuer, and the SMTP transport for verification and test mail.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(cfg.App.BcryptCost)
	engine := totp.NewEngine(cfg.App.TokenIssuer)
	transport := mail.NewTransport(cfg.SMTP, cfg.App.BaseURL, log)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, transport, cfg.App, log),
		OTPService:  NewOTPService(storages.UserRepository, storages.OTPSecretRepository, engine, log),
		MailService: NewMailService(transport, log),
	}
}
