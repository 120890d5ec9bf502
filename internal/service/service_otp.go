// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/internal/store"
	"github.com/formit/auth-service/internal/totp"
	"github.com/formit/auth-service/models"
)

type otpService struct {
	users   store.UserRepository
	secrets store.OTPSecretRepository
	engine  TOTPEngine
	logger  *logger.Logger
}

// NewOTPService wires the two-factor enrollment service from its dependencies.
func NewOTPService(users store.UserRepository, secrets store.OTPSecretRepository, engine TOTPEngine, log *logger.Logger) OTPService {
	return &otpService{
		users:   users,
		secrets: secrets,
		engine:  engine,
		logger:  log,
	}
}

func (s *otpService) Enable(ctx context.Context, userID string) (models.EnrollmentResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return models.EnrollmentResponse{}, err
	}
	if user.OTPEnabled {
		return models.EnrollmentResponse{}, ErrOTPAlreadyEnabled
	}

	secret, provisioningURI, err := s.engine.GenerateSecret(user.Email)
	if err != nil {
		return models.EnrollmentResponse{}, fmt.Errorf("error occurred during generating OTP secret: %w", err)
	}

	// the secret row and the otp_enabled flag are written in one transaction
	if err = s.secrets.EnrollSecret(ctx, user.ID, secret); err != nil {
		return models.EnrollmentResponse{}, err
	}

	qrCode, err := s.engine.QRCodeDataURI(provisioningURI)
	if err != nil {
		// enrollment already succeeded, the client still has the secret and
		// the URI for manual entry
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to render enrollment QR code")
		qrCode = ""
	}

	log.Info().Str("user_id", user.ID).Msg("otp enabled")

	return models.EnrollmentResponse{
		Secret:          secret,
		ProvisioningURI: provisioningURI,
		QRCode:          qrCode,
	}, nil
}

func (s *otpService) Verify(ctx context.Context, userID, code string) (bool, error) {
	secret, err := s.enrolledSecret(ctx, userID)
	if err != nil {
		return false, err
	}

	valid, err := s.engine.VerifyCode(secret, code)
	if err != nil {
		if errors.Is(err, totp.ErrInvalidCodeFormat) {
			// a malformed code can never match, same outcome as a wrong one
			return false, nil
		}
		return false, fmt.Errorf("error occurred during verifying OTP code: %w", err)
	}

	return valid, nil
}

func (s *otpService) Disable(ctx context.Context, userID, code string) error {
	log := logger.FromContext(ctx)

	valid, err := s.Verify(ctx, userID, code)
	if err != nil {
		return err
	}
	if !valid {
		return ErrInvalidOTPCode
	}

	// the secret row and the otp_enabled flag are cleared in one transaction
	if err = s.secrets.RemoveSecret(ctx, userID); err != nil {
		if errors.Is(err, store.ErrOTPSecretNotFound) {
			return ErrOTPNotEnabled
		}
		return err
	}

	log.Info().Str("user_id", userID).Msg("otp disabled")

	return nil
}

func (s *otpService) findUser(ctx context.Context, userID string) (models.User, error) {
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

// enrolledSecret resolves the user's TOTP secret, reporting ErrOTPNotEnabled
// when the account has no enrollment or the flag and the secret row disagree.
func (s *otpService) enrolledSecret(ctx context.Context, userID string) (string, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if !user.OTPEnabled {
		return "", ErrOTPNotEnabled
	}

	otpSecret, err := s.secrets.FindSecretByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrOTPSecretNotFound) {
			return "", ErrOTPNotEnabled
		}
		return "", err
	}

	return otpSecret.Secret, nil
}
