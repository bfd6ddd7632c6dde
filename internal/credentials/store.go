// Package credentials persists the bearer token for the JobPilot backend
// across CLI invocations. The token is created at login, read on every
// outgoing request, and destroyed on logout or expiry.
package credentials

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Store.Token when no token is stored.
var ErrNotFound = errors.New("no stored credential")

// Store persists a single bearer token.
type Store interface {
	// Token returns the stored token. Returns ErrNotFound when nothing is
	// stored or the stored token has expired.
	Token() (string, error)
	// Save stores the token, replacing any previous value.
	Save(token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

// Open returns the credential store for this machine. When path is non-empty
// the file-backed store at that path is used; otherwise the OS keychain is
// preferred, falling back to a file under the user config directory when no
// keychain is available (headless hosts, containers).
func Open(path string) (Store, error) {
	if path != "" {
		return withExpiryCheck(newFileStore(path)), nil
	}

	ks := newKeyringStore()
	if ks.available() {
		return withExpiryCheck(ks), nil
	}

	fs, err := defaultFileStore()
	if err != nil {
		return nil, fmt.Errorf("no keychain available and no fallback path: %w", err)
	}
	return withExpiryCheck(fs), nil
}

// expiringStore wraps a Store and treats an expired JWT as absent.
// Opaque (non-JWT) tokens pass through untouched.
type expiringStore struct {
	inner Store
}

func withExpiryCheck(inner Store) Store {
	return &expiringStore{inner: inner}
}

func (s *expiringStore) Token() (string, error) {
	token, err := s.inner.Token()
	if err != nil {
		return "", err
	}
	if Expired(token) {
		// Drop the stale token so later reads are cheap.
		_ = s.inner.Clear()
		return "", ErrNotFound
	}
	return token, nil
}

func (s *expiringStore) Save(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to store an empty token")
	}
	return s.inner.Save(token)
}

func (s *expiringStore) Clear() error {
	return s.inner.Clear()
}
