package credentials

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	// keyringService groups the app's secrets in the OS keychain.
	keyringService = "jobpilot"
	// keyringAccount is the account name under which the API token is stored.
	keyringAccount = "api-token"
)

// keyringStore stores the token in the OS keychain (macOS Keychain,
// Windows Credential Manager, or the freedesktop Secret Service).
type keyringStore struct{}

func newKeyringStore() *keyringStore {
	return &keyringStore{}
}

// available reports whether the OS keychain can be used on this host.
func (s *keyringStore) available() bool {
	_, err := keyring.Get(keyringService, keyringAccount)
	if err == nil || errors.Is(err, keyring.ErrNotFound) {
		return true
	}
	return false
}

func (s *keyringStore) Token() (string, error) {
	token, err := keyring.Get(keyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token from keychain: %w", err)
	}
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *keyringStore) Save(token string) error {
	if err := keyring.Set(keyringService, keyringAccount, token); err != nil {
		return fmt.Errorf("failed to store token in keychain: %w", err)
	}
	return nil
}

func (s *keyringStore) Clear() error {
	err := keyring.Delete(keyringService, keyringAccount)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete token from keychain: %w", err)
	}
	return nil
}
