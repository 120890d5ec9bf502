// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/models"
)

// otpSecretRepository is the SQL-backed implementation of
// [OTPSecretRepository]. Enrollment and removal touch both the otp_secrets
// row and the users.otp_enabled flag inside one transaction; the flag and
// the secret therefore cannot be observed out of sync.
type otpSecretRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOTPSecretRepository constructs an [OTPSecretRepository] backed by the
// provided database connection and logger.
func NewOTPSecretRepository(db *DB, logger *logger.Logger) OTPSecretRepository {
	logger.Debug().Msg("creating otp secret repository")
	return &otpSecretRepository{
		db:     db,
		logger: logger,
	}
}

// EnrollSecret stores a fresh secret for the user and sets otp_enabled.
// Any previous secret is replaced, so re-enrollment after a lost secret
// overwrites the old one. All three statements commit atomically.
func (r *otpSecretRepository) EnrollSecret(ctx context.Context, userID, secret string) error {
	return r.withinTx(ctx, "EnrollSecret", func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := r.db.deleteOTPSecretQuery(userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		insertQuery, insertArgs, err := r.db.insertOTPSecretQuery(models.OTPSecret{
			UserID:    userID,
			Secret:    secret,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return r.setOTPEnabled(ctx, tx, userID, true)
	})
}

// FindSecretByUserID returns the enrolled secret for the user, or
// [ErrOTPSecretNotFound] if none exists.
func (r *otpSecretRepository) FindSecretByUserID(ctx context.Context, userID string) (models.OTPSecret, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectOTPSecretQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*otpSecretRepository.FindSecretByUserID").Msg("error: building query")
		return models.OTPSecret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var secret models.OTPSecret
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&secret.UserID, &secret.Secret, &secret.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OTPSecret{}, ErrOTPSecretNotFound
		}

		log.Err(err).Str("func", "*otpSecretRepository.FindSecretByUserID").Msg("error: scanning error")
		return models.OTPSecret{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return secret, nil
}

// RemoveSecret deletes the user's secret and clears otp_enabled atomically.
// Returns [ErrOTPSecretNotFound] if the user has no secret enrolled.
func (r *otpSecretRepository) RemoveSecret(ctx context.Context, userID string) error {
	return r.withinTx(ctx, "RemoveSecret", func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := r.db.deleteOTPSecretQuery(userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			return ErrOTPSecretNotFound
		}

		return r.setOTPEnabled(ctx, tx, userID, false)
	})
}

func (r *otpSecretRepository) setOTPEnabled(ctx context.Context, tx *sql.Tx, userID string, enabled bool) error {
	query, args, err := r.db.buildUpdateUserQuery(userID, map[string]any{"otp_enabled": enabled})
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// withinTx runs fn inside a transaction, rolling back on any error and
// wrapping begin/commit failures in their sentinel errors.
func (r *otpSecretRepository) withinTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*otpSecretRepository."+op).Msg("error: beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		log.Err(err).Str("func", "*otpSecretRepository."+op).Msg("error: rolling back")
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*otpSecretRepository."+op).Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
