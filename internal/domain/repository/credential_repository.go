// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"vetadmin/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCredentialsNotFound is returned when no credentials have been saved yet.
var ErrCredentialsNotFound = errors.New("credentials not found")

// CredentialRepository persists session credentials between runs.
// It is the browser localStorage of the original web client.
type CredentialRepository interface {
	// Save overwrites the stored credentials.
	Save(creds *entity.Credentials) error

	// Load returns the stored credentials, or ErrCredentialsNotFound.
	Load() (*entity.Credentials, error)

	// Clear removes any stored credentials. Clearing an empty store is not an error.
	Clear() error
}
