// Package mail implements the outbound SMTP transport used to deliver
// verification links and test messages.
package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/formit/auth-service/internal/config"
	"github.com/formit/auth-service/internal/logger"
	gomail "github.com/wneessen/go-mail"
)

// defaultSendTimeout bounds a delivery attempt when no timeout is configured,
// so a wedged SMTP server can never stall registration indefinitely.
const defaultSendTimeout = 5 * time.Second

// Transport delivers messages over SMTP. Every send runs under a hard
// timeout; the transport never blocks a caller longer than the configured
// bound regardless of SMTP server health.
type Transport struct {
	cfg     config.SMTP
	baseURL string
	logger  *logger.Logger
}

// NewTransport constructs a Transport from SMTP settings and the externally
// reachable base URL used to build verification links.
func NewTransport(cfg config.SMTP, baseURL string, logger *logger.Logger) *Transport {
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = defaultSendTimeout
	}

	return &Transport{
		cfg:     cfg,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// SendVerification delivers the account-verification message carrying the
// signed verification token as a clickable link.
func (t *Transport) SendVerification(ctx context.Context, toEmail, name, token string) error {
	verifyURL := fmt.Sprintf("%s/api/auth/verify?token=%s", t.baseURL, token)

	subject := "Welcome! Please verify your account"
	body := fmt.Sprintf(
		"<h1>Welcome, %s!</h1>"+
			"<p>Thanks for registering. To complete your registration, click the link below:</p>"+
			"<p><a href=%q>Verify your account</a></p>"+
			"<p>If you did not create this account, you can safely ignore this email.</p>",
		name, verifyURL,
	)

	return t.send(ctx, toEmail, subject, body)
}

// SendTest delivers a short test message. Used by the mail health endpoint
// to observe transport configuration end to end.
func (t *Transport) SendTest(ctx context.Context, toEmail string) error {
	return t.send(ctx, toEmail, "Test email", "<p>This is a test email from the auth service.</p>")
}

// send composes and delivers one HTML message over SMTP under the configured
// hard timeout.
func (t *Transport) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()

	if t.cfg.FromName != "" {
		if err := msg.FromFormat(t.cfg.FromName, t.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	} else {
		if err := msg.From(t.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	opts := []gomail.Option{
		gomail.WithPort(t.cfg.Port),
		gomail.WithTimeout(t.cfg.SendTimeout),
	}

	if t.cfg.TLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
		// Implicit TLS (SSL) on port 465, STARTTLS everywhere else.
		if t.cfg.Port == 465 {
			opts = append(opts, gomail.WithSSL())
		}
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}

	if t.cfg.Username != "" && t.cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(t.cfg.Username),
			gomail.WithPassword(t.cfg.Password),
		)
	}

	client, err := gomail.NewClient(t.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, t.cfg.SendTimeout)
	defer cancel()

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}

	return nil
}
