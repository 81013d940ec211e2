// Package credfile stores session credentials in a JSON file under the
// user's config directory, standing in for the original client's
// browser-local storage.
package credfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"vetadmin/config"
	"vetadmin/internal/domain/entity"
	"vetadmin/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	credentialsDir  = "vetadmin"
	credentialsFile = "credentials.json"
)

type store struct {
	path string
}

// New creates a file-backed CredentialRepository. The path comes from
// configuration, defaulting to the platform user-config directory.
func New(cfg *config.Config) (repository.CredentialRepository, error) {
	path := cfg.Credentials.Path
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolve user config dir")
		}
		path = filepath.Join(base, credentialsDir, credentialsFile)
	}

	return &store{path: path}, nil
}

// NewAtPath creates a store writing to an explicit file path.
func NewAtPath(path string) repository.CredentialRepository {
	return &store{path: path}
}

// Save overwrites the stored credentials. The file is written 0600 since it
// holds bearer tokens.
func (s *store) Save(creds *entity.Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create credentials dir")
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode credentials")
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(err, "write credentials file")
	}

	return nil
}

// Load returns the stored credentials, or ErrCredentialsNotFound when the
// file does not exist.
func (s *store) Load() (*entity.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrCredentialsNotFound
		}

		return nil, errors.Wrap(err, "read credentials file")
	}

	var creds entity.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// A corrupt file is treated the same as no file at all, so a
		// fresh login can overwrite it.
		return nil, repository.ErrCredentialsNotFound
	}

	return &creds, nil
}

// Clear removes the credentials file. Idempotent.
func (s *store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove credentials file")
	}

	return nil
}
