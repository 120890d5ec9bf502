package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/formit/auth-service/internal/logger"
)

type mailService struct {
	mailer MailTransport
	logger *logger.Logger
}

// NewMailService wires the operational mail-check service.
func NewMailService(mailer MailTransport, log *logger.Logger) MailService {
	return &mailService{mailer: mailer, logger: log}
}

// SendTestEmail delivers a canned message to toEmail through the configured
// SMTP transport. Unlike registration mail this is synchronous and delivery
// failure is surfaced to the caller, since probing the transport is the point.
func (s *mailService) SendTestEmail(ctx context.Context, toEmail string) error {
	log := logger.FromContext(ctx)

	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("%w: a valid recipient email is required", ErrInvalidDataProvided)
	}

	if err := s.mailer.SendTest(ctx, toEmail); err != nil {
		log.Error().Err(err).Str("to", toEmail).Msg("test mail delivery failed")
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return nil
}
