package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/formit/auth-service/internal/logger"
)

// shutdownTimeout bounds how long draining in-flight requests may take after
// a termination signal before the process gives up and exits.
const shutdownTimeout = 10 * time.Second

// RunUntilSignal runs every given server and blocks until one of them fails
// or the process receives SIGINT/SIGTERM, then gracefully shuts all of them
// down. The first run error, if any, is returned.
func RunUntilSignal(log *logger.Logger, servers ...Server) error {
	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func() {
			errCh <- srv.Run()
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("termination signal received")
	case runErr = <-errCh:
		if runErr != nil {
			log.Error().Err(runErr).Msg("server stopped unexpectedly")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}

	return runErr
}
