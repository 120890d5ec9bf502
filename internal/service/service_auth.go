// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/formit/auth-service/internal/config"
	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/internal/store"
	"github.com/formit/auth-service/internal/utils"
	"github.com/formit/auth-service/models"
)

const minPasswordLength = 8

type authService struct {
	users  store.UserRepository
	hasher PasswordHasher
	mailer MailTransport
	ids    *utils.UUIDGenerator
	cfg    config.App
	logger *logger.Logger
}

// NewAuthService wires the account lifecycle service from its dependencies.
// cfg supplies the token sign key, issuer and durations.
func NewAuthService(users store.UserRepository, hasher PasswordHasher, mailer MailTransport, cfg config.App, log *logger.Logger) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		mailer: mailer,
		ids:    utils.NewUUIDGenerator(),
		cfg:    cfg,
		logger: log,
	}
}

func (s *authService) Register(ctx context.Context, email, password, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegistration(email, password); err != nil {
		return models.User{}, err
	}

	// pre-read for a clean conflict before paying for the hash; the unique
	// index remains the authority under concurrent registration
	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("error occurred during hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:            s.ids.Generate(),
		Email:         email,
		PasswordHash:  passwordHash,
		Name:          name,
		EmailVerified: false,
		OTPEnabled:    false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	// Best-effort verification mail. The account is already durable at this
	// point; a dead SMTP server must not roll the registration back or leak
	// a transport error to the caller. The transport bounds its own attempt
	// with a hard timeout, so registration latency stays bounded too.
	verificationToken, err := utils.GenerateJWTToken(
		s.cfg.TokenIssuer, created.ID, models.TokenPurposeEmailVerification,
		s.cfg.VerificationTokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		log.Error().Err(err).
			Str("policy", "fire-and-forget").
			Str("user_id", created.ID).
			Msg("failed to issue verification token, skipping verification mail")
		return created, nil
	}

	if err = s.mailer.SendVerification(ctx, created.Email, created.Name, verificationToken.SignedString); err != nil {
		log.Error().Err(err).
			Str("policy", "fire-and-forget").
			Str("user_id", created.ID).
			Msg("verification mail delivery failed")
	}

	return created, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.Token{}, models.User{}, fmt.Errorf("%w: email and password are required", ErrInvalidDataProvided)
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// same condition as a wrong password, on purpose
			return models.Token{}, models.User{}, ErrInvalidCredentials
		}
		return models.Token{}, models.User{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		log.Debug().Str("user_id", user.ID).Msg("password verification failed")
		return models.Token{}, models.User{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(
		s.cfg.TokenIssuer, user.ID, models.TokenPurposeSession,
		s.cfg.SessionTokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, models.User{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, user, nil
}

func (s *authService) VerifyEmail(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return models.User{}, fmt.Errorf("%w: token is required", ErrInvalidDataProvided)
	}

	token, err := utils.ValidateAndParseJWTToken(
		tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer, models.TokenPurposeEmailVerification)
	if err != nil {
		log.Debug().Err(err).Msg("email verification token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := s.users.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	// verifying twice is harmless, report success without touching the row
	if user.EmailVerified {
		return user, nil
	}

	if err = s.users.UpdateUser(ctx, user.ID, map[string]any{"email_verified": true}); err != nil {
		return models.User{}, err
	}

	user.EmailVerified = true
	log.Info().Str("user_id", user.ID).Msg("email verified")

	return user, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("%w: user id is required", ErrInvalidDataProvided)
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}

func (s *authService) ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(
		tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer, models.TokenPurposeSession)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}

func validateRegistration(email, password string) error {
	switch {
	case email == "" || !strings.Contains(email, "@"):
		return fmt.Errorf("%w: a valid email is required", ErrInvalidDataProvided)
	case len(password) < minPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	default:
		return nil
	}
}
