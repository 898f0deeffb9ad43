package service

import (
	"errors"
	"fmt"

	"yippee/internal/domain"
	"yippee/internal/secrets"
)

type AccountService struct {
	repo  AccountRepository
	codec *secrets.Codec
}

func NewAccountService(repo AccountRepository, codec *secrets.Codec) *AccountService {
	return &AccountService{repo: repo, codec: codec}
}

// Register encrypts the password and creates the account. The plaintext
// password is never persisted.
func (s *AccountService) Register(email, password, name string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}
	secret, err := s.codec.Encrypt(password)
	if err != nil {
		return fmt.Errorf("encrypt password: %w", err)
	}
	return s.repo.CreateAccount(&domain.Account{Email: email, Name: name, Secret: secret})
}

// Authenticate compares the supplied password against the decrypted stored
// secret. An unknown email is an ordinary false, but a stored secret that no
// longer decrypts is surfaced as secrets.ErrDecryption so corruption is not
// mistaken for a wrong password.
func (s *AccountService) Authenticate(email, password string) (bool, error) {
	acc, err := s.repo.GetAccount(email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	stored, err := s.codec.Decrypt(acc.Secret)
	if err != nil {
		return false, fmt.Errorf("stored secret for %q: %w", email, err)
	}
	return stored == password, nil
}

func (s *AccountService) Exists(email string) (bool, string, error) {
	acc, err := s.repo.GetAccount(email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return false, "", nil
	}
	if err != nil {
		return false, "", err
	}
	return true, acc.Name, nil
}

// ChangePassword verifies the old password itself rather than trusting the
// caller to have done so.
func (s *AccountService) ChangePassword(email, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", domain.ErrValidation)
	}
	ok, err := s.Authenticate(email, oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}
	secret, err := s.codec.Encrypt(newPassword)
	if err != nil {
		return fmt.Errorf("encrypt password: %w", err)
	}
	return s.repo.UpdatePassword(email, secret)
}

// Get returns the account record. Secret stays opaque ciphertext.
func (s *AccountService) Get(email string) (*domain.Account, error) {
	return s.repo.GetAccount(email)
}

var _ AccountServiceInterface = (*AccountService)(nil)
