package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/models"
)

func newQueryDB(format sq.PlaceholderFormat, dialect string) *DB {
	return &DB{
		builder: sq.StatementBuilder.PlaceholderFormat(format),
		dialect: dialect,
		logger:  logger.Nop(),
	}
}

func TestInsertUserQuery_PostgresPlaceholders(t *testing.T) {
	db := newQueryDB(sq.Dollar, "pgx")

	query, args, err := db.insertUserQuery(models.User{ID: "id", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "INSERT INTO users") {
		t.Errorf("unexpected query: %s", query)
	}
	if !strings.Contains(query, "$8") {
		t.Errorf("expected $N placeholders, got: %s", query)
	}
	if len(args) != len(userColumns) {
		t.Errorf("expected %d args, got %d", len(userColumns), len(args))
	}
}

func TestInsertUserQuery_SQLitePlaceholders(t *testing.T) {
	db := newQueryDB(sq.Question, "sqlite3")

	query, _, err := db.insertUserQuery(models.User{ID: "id", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "$1") {
		t.Errorf("expected ? placeholders, got: %s", query)
	}
	if !strings.Contains(query, "?") {
		t.Errorf("expected ? placeholders, got: %s", query)
	}
}

func TestSelectUserByEmailQuery(t *testing.T) {
	db := newQueryDB(sq.Dollar, "pgx")

	query, args, err := db.selectUserByEmailQuery("a@b.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "FROM users") || !strings.Contains(query, "email = $1") {
		t.Errorf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "a@b.c" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildUpdateUserQuery_AlwaysTouchesUpdatedAt(t *testing.T) {
	db := newQueryDB(sq.Dollar, "pgx")

	query, args, err := db.buildUpdateUserQuery("id", map[string]any{"email_verified": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "email_verified") || !strings.Contains(query, "updated_at") {
		t.Errorf("unexpected query: %s", query)
	}
	// email_verified, updated_at, id
	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestBuildUpdateUserQuery_RejectsUnknownColumn(t *testing.T) {
	db := newQueryDB(sq.Dollar, "pgx")

	_, _, err := db.buildUpdateUserQuery("id", map[string]any{"password_hash": "x"})
	if err == nil {
		t.Fatal("expected error for non-updatable column, got nil")
	}
}

func TestSelectOTPSecretQuery(t *testing.T) {
	db := newQueryDB(sq.Question, "sqlite3")

	query, args, err := db.selectOTPSecretQuery("user-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "FROM otp_secrets") || !strings.Contains(query, "user_id = ?") {
		t.Errorf("unexpected query: %s", query)
	}
	if len(args) != 1 {
		t.Errorf("unexpected args: %v", args)
	}
}
