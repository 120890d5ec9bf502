package service

import (
	"context"
	"errors"

	"github.com/formit/auth-service/models"
)

// Hand-rolled mocks with function fields: each test overrides only the calls
// it expects, anything else fails loudly.

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn    func(ctx context.Context, id string) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	updateUserFn      func(ctx context.Context, id string, changes map[string]any) error
	deleteUserFn      func(ctx context.Context, id string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn == nil {
		return models.User{}, errors.New("unexpected call: CreateUser")
	}
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if m.findUserByIDFn == nil {
		return models.User{}, errors.New("unexpected call: FindUserByID")
	}
	return m.findUserByIDFn(ctx, id)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn == nil {
		return models.User{}, errors.New("unexpected call: FindUserByEmail")
	}
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, id string, changes map[string]any) error {
	if m.updateUserFn == nil {
		return errors.New("unexpected call: UpdateUser")
	}
	return m.updateUserFn(ctx, id, changes)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id string) error {
	if m.deleteUserFn == nil {
		return errors.New("unexpected call: DeleteUser")
	}
	return m.deleteUserFn(ctx, id)
}

type mockOTPSecretRepository struct {
	enrollSecretFn       func(ctx context.Context, userID, secret string) error
	findSecretByUserIDFn func(ctx context.Context, userID string) (models.OTPSecret, error)
	removeSecretFn       func(ctx context.Context, userID string) error
}

func (m *mockOTPSecretRepository) EnrollSecret(ctx context.Context, userID, secret string) error {
	if m.enrollSecretFn == nil {
		return errors.New("unexpected call: EnrollSecret")
	}
	return m.enrollSecretFn(ctx, userID, secret)
}

func (m *mockOTPSecretRepository) FindSecretByUserID(ctx context.Context, userID string) (models.OTPSecret, error) {
	if m.findSecretByUserIDFn == nil {
		return models.OTPSecret{}, errors.New("unexpected call: FindSecretByUserID")
	}
	return m.findSecretByUserIDFn(ctx, userID)
}

func (m *mockOTPSecretRepository) RemoveSecret(ctx context.Context, userID string) error {
	if m.removeSecretFn == nil {
		return errors.New("unexpected call: RemoveSecret")
	}
	return m.removeSecretFn(ctx, userID)
}

type mockHasher struct {
	hashFn   func(plaintext string) (string, error)
	verifyFn func(plaintext, hash string) bool
}

func (m *mockHasher) Hash(plaintext string) (string, error) {
	if m.hashFn == nil {
		return "hashed:" + plaintext, nil
	}
	return m.hashFn(plaintext)
}

func (m *mockHasher) Verify(plaintext, hash string) bool {
	if m.verifyFn == nil {
		return "hashed:"+plaintext == hash
	}
	return m.verifyFn(plaintext, hash)
}

type mockMailTransport struct {
	sendVerificationFn func(ctx context.Context, toEmail, name, token string) error
	sendTestFn         func(ctx context.Context, toEmail string) error
}

func (m *mockMailTransport) SendVerification(ctx context.Context, toEmail, name, token string) error {
	if m.sendVerificationFn == nil {
		return nil
	}
	return m.sendVerificationFn(ctx, toEmail, name, token)
}

func (m *mockMailTransport) SendTest(ctx context.Context, toEmail string) error {
	if m.sendTestFn == nil {
		return nil
	}
	return m.sendTestFn(ctx, toEmail)
}

type mockTOTPEngine struct {
	generateSecretFn func(accountLabel string) (string, string, error)
	verifyCodeFn     func(secret, code string) (bool, error)
	qrCodeDataURIFn  func(provisioningURI string) (string, error)
}

func (m *mockTOTPEngine) GenerateSecret(accountLabel string) (string, string, error) {
	if m.generateSecretFn == nil {
		return "", "", errors.New("unexpected call: GenerateSecret")
	}
	return m.generateSecretFn(accountLabel)
}

func (m *mockTOTPEngine) VerifyCode(secret, code string) (bool, error) {
	if m.verifyCodeFn == nil {
		return false, errors.New("unexpected call: VerifyCode")
	}
	return m.verifyCodeFn(secret, code)
}

func (m *mockTOTPEngine) QRCodeDataURI(provisioningURI string) (string, error) {
	if m.qrCodeDataURIFn == nil {
		return "data:image/png;base64,stub", nil
	}
	return m.qrCodeDataURIFn(provisioningURI)
}
