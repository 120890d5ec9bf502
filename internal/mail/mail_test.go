package mail

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formit/auth-service/internal/config"
	"github.com/formit/auth-service/internal/logger"
)

func TestNewTransport_DefaultTimeout(t *testing.T) {
	transport := NewTransport(config.SMTP{Host: "localhost", Port: 1025}, "http://localhost:8080", logger.Nop())
	assert.Equal(t, defaultSendTimeout, transport.cfg.SendTimeout)

	transport = NewTransport(config.SMTP{SendTimeout: 2 * time.Second}, "", logger.Nop())
	assert.Equal(t, 2*time.Second, transport.cfg.SendTimeout)
}

func TestNewTransport_TrimsBaseURL(t *testing.T) {
	transport := NewTransport(config.SMTP{}, "https://auth.example.com/", logger.Nop())
	assert.Equal(t, "https://auth.example.com", transport.baseURL)
}

// No SMTP server listens on the configured port, so delivery must fail within
// the hard timeout instead of hanging.
func TestSendVerification_FailsFastWithoutServer(t *testing.T) {
	transport := NewTransport(config.SMTP{
		Host:        "127.0.0.1",
		Port:        1, // nothing listens here
		From:        "noreply@example.com",
		SendTimeout: 500 * time.Millisecond,
	}, "http://localhost:8080", logger.Nop())

	start := time.Now()
	err := transport.SendVerification(context.Background(), "john@example.com", "John", "token-123")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 5*time.Second, "send should fail within the configured timeout")
}

func TestSend_InvalidRecipient(t *testing.T) {
	transport := NewTransport(config.SMTP{
		Host: "127.0.0.1",
		Port: 1,
		From: "noreply@example.com",
	}, "", logger.Nop())

	err := transport.SendTest(context.Background(), "not-an-address")
	require.Error(t, err)
}
