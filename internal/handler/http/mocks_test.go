package http

import (
	"context"
	"errors"
	"time"

	"github.com/formit/auth-service/internal/config"
	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/internal/service"
	"github.com/formit/auth-service/models"
)

type mockAuthService struct {
	registerFn          func(ctx context.Context, email, password, name string) (models.User, error)
	loginFn             func(ctx context.Context, email, password string) (models.Token, models.User, error)
	verifyEmailFn       func(ctx context.Context, tokenString string) (models.User, error)
	currentUserFn       func(ctx context.Context, userID string) (models.User, error)
	parseSessionTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, password, name string) (models.User, error) {
	if m.registerFn == nil {
		return models.User{}, errors.New("unexpected call: Register")
	}
	return m.registerFn(ctx, email, password, name)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Token, models.User, error) {
	if m.loginFn == nil {
		return models.Token{}, models.User{}, errors.New("unexpected call: Login")
	}
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, tokenString string) (models.User, error) {
	if m.verifyEmailFn == nil {
		return models.User{}, errors.New("unexpected call: VerifyEmail")
	}
	return m.verifyEmailFn(ctx, tokenString)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	if m.currentUserFn == nil {
		return models.User{}, errors.New("unexpected call: CurrentUser")
	}
	return m.currentUserFn(ctx, userID)
}

func (m *mockAuthService) ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseSessionTokenFn == nil {
		return models.Token{}, errors.New("unexpected call: ParseSessionToken")
	}
	return m.parseSessionTokenFn(ctx, tokenString)
}

type mockOTPService struct {
	enableFn  func(ctx context.Context, userID string) (models.EnrollmentResponse, error)
	verifyFn  func(ctx context.Context, userID, code string) (bool, error)
	disableFn func(ctx context.Context, userID, code string) error
}

func (m *mockOTPService) Enable(ctx context.Context, userID string) (models.EnrollmentResponse, error) {
	if m.enableFn == nil {
		return models.EnrollmentResponse{}, errors.New("unexpected call: Enable")
	}
	return m.enableFn(ctx, userID)
}

func (m *mockOTPService) Verify(ctx context.Context, userID, code string) (bool, error) {
	if m.verifyFn == nil {
		return false, errors.New("unexpected call: Verify")
	}
	return m.verifyFn(ctx, userID, code)
}

func (m *mockOTPService) Disable(ctx context.Context, userID, code string) error {
	if m.disableFn == nil {
		return errors.New("unexpected call: Disable")
	}
	return m.disableFn(ctx, userID, code)
}

type mockMailService struct {
	sendTestEmailFn func(ctx context.Context, toEmail string) error
}

func (m *mockMailService) SendTestEmail(ctx context.Context, toEmail string) error {
	if m.sendTestEmailFn == nil {
		return errors.New("unexpected call: SendTestEmail")
	}
	return m.sendTestEmailFn(ctx, toEmail)
}

// sessionFor returns a ParseSessionToken stub accepting exactly one token.
func sessionFor(token, userID string) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(ctx context.Context, tokenString string) (models.Token, error) {
		if tokenString != token {
			return models.Token{}, service.ErrInvalidToken
		}
		return models.Token{UserID: userID}, nil
	}
}

func newTestHandler(auth *mockAuthService, otp *mockOTPService, mail *mockMailService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if otp == nil {
		otp = &mockOTPService{}
	}
	if mail == nil {
		mail = &mockMailService{}
	}

	services := &service.Services{
		AuthService: auth,
		OTPService:  otp,
		MailService: mail,
	}
	cfg := &config.StructuredConfig{}
	cfg.App.Environment = "development"
	cfg.App.SessionTokenDuration = time.Hour

	return NewHandler(services, cfg, logger.Nop())
}
