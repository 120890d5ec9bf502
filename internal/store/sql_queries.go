package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/formit/auth-service/models"
)

// userColumns is the canonical column order scanned into [models.User].
var userColumns = []string{
	"id", "email", "password_hash", "name",
	"email_verified", "otp_enabled", "created_at", "updated_at",
}

// userUpdatableColumns whitelists the columns a partial update may touch.
// password_hash, id, email and the timestamps are deliberately absent:
// nothing in the API mutates them after creation.
var userUpdatableColumns = map[string]struct{}{
	"email_verified": {},
	"otp_enabled":    {},
	"name":           {},
}

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.Name,
			user.EmailVerified, user.OTPEnabled, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func (db *DB) selectUserByIDQuery(id string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) selectUserByEmailQuery(email string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// buildUpdateUserQuery builds a partial UPDATE touching only the requested
// columns and always refreshing updated_at. Unknown columns are rejected so
// a typo cannot silently widen the write surface.
func (db *DB) buildUpdateUserQuery(id string, changes map[string]any) (string, []any, error) {
	if len(changes) == 0 {
		return "", nil, fmt.Errorf("%w: no columns to update", ErrBuildingSQLQuery)
	}

	update := db.builder.Update(models.User{}.TableName())
	for column, value := range changes {
		if _, ok := userUpdatableColumns[column]; !ok {
			return "", nil, fmt.Errorf("%w: column %q is not updatable", ErrBuildingSQLQuery, column)
		}
		update = update.Set(column, value)
	}

	return update.
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) deleteUserQuery(id string) (string, []any, error) {
	return db.builder.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) insertOTPSecretQuery(secret models.OTPSecret) (string, []any, error) {
	return db.builder.
		Insert(secret.TableName()).
		Columns("user_id", "secret", "created_at").
		Values(secret.UserID, secret.Secret, secret.CreatedAt).
		ToSql()
}

func (db *DB) selectOTPSecretQuery(userID string) (string, []any, error) {
	return db.builder.
		Select("user_id", "secret", "created_at").
		From(models.OTPSecret{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) deleteOTPSecretQuery(userID string) (string, []any, error) {
	return db.builder.
		Delete(models.OTPSecret{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
