package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// fileStore keeps the token in a mode-0600 JSON file. It is the fallback for
// hosts without a keychain and can be forced via configuration.
type fileStore struct {
	path string
}

// credentialFile is the on-disk shape of the stored credential.
type credentialFile struct {
	Token string `json:"token"`
}

func newFileStore(path string) *fileStore {
	return &fileStore{path: path}
}

// defaultFileStore places the credential file under the user config directory.
func defaultFileStore() (*fileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return newFileStore(filepath.Join(dir, "jobpilot", "credentials.json")), nil
}

func (s *fileStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential file %s: %w", s.path, err)
	}

	var cf credentialFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return "", fmt.Errorf("failed to parse credential file %s: %w", s.path, err)
	}
	if cf.Token == "" {
		return "", ErrNotFound
	}
	return cf.Token, nil
}

func (s *fileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}

	data, err := json.Marshal(credentialFile{Token: token})
	if err != nil {
		return fmt.Errorf("failed to encode credential: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credential file %s: %w", s.path, err)
	}
	return nil
}

func (s *fileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credential file %s: %w", s.path, err)
	}
	return nil
}
