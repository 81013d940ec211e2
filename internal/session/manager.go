// Package session holds the authentication state shared by every view of
// the client: the signed-in user, both tokens, the tenant clinic, and the
// capability set decoded from the access token.
package session

import (
	"log/slog"
	"sync"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/domain/repository"
	"vetadmin/internal/errors"
)

// Wildcard is the capability token that implies every other capability.
const Wildcard = "*"

// Manager is an injectable session context. It has exactly two states,
// anonymous and authenticated; Establish moves it forward, Clear (or a
// failed silent refresh) moves it back. The capability set is always
// derived from the current access token, never stored independently.
type Manager struct {
	credRepo repository.CredentialRepository
	logger   *slog.Logger

	mu            sync.RWMutex
	user          entity.User
	accessToken   string
	refreshToken  string
	clinicID      string
	permissions   map[string]struct{}
	authenticated bool
}

// NewManager is the constructor for Manager. Credentials persisted by a
// previous run are restored so the session survives restarts; a missing or
// unreadable store simply starts anonymous.
func NewManager(credRepo repository.CredentialRepository, logger *slog.Logger) *Manager {
	m := &Manager{
		credRepo:    credRepo,
		logger:      logger,
		permissions: map[string]struct{}{},
	}

	creds, err := credRepo.Load()
	if err != nil {
		if !errors.Is(err, repository.ErrCredentialsNotFound) {
			logger.Warn("Failed to restore session", slog.Any("error", err))
		}

		return m
	}

	m.user = creds.User
	m.accessToken = creds.AccessToken
	m.refreshToken = creds.RefreshToken
	m.clinicID = creds.ClinicID
	m.permissions = toSet(decodePermissions(creds.AccessToken))
	m.authenticated = creds.AccessToken != ""

	return m
}

// Establish persists the principal, tokens and tenant id, and derives the
// capability set from the access token's claims. All string arguments are
// required non-empty.
func (m *Manager) Establish(user entity.User, accessToken, refreshToken, clinicID string) error {
	if accessToken == "" || refreshToken == "" || clinicID == "" {
		return errors.New("session requires access token, refresh token and clinic id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.credRepo.Save(&entity.Credentials{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ClinicID:     clinicID,
	}); err != nil {
		return errors.Wrap(err, "persist credentials")
	}

	m.user = user
	m.accessToken = accessToken
	m.refreshToken = refreshToken
	m.clinicID = clinicID
	m.permissions = toSet(decodePermissions(accessToken))
	m.authenticated = true

	m.logger.Info("Session established",
		slog.String("user", user.Email),
		slog.String("clinic_id", clinicID),
		slog.Int("permissions", len(m.permissions)))

	return nil
}

// ReplaceAccessToken swaps in a newly refreshed access token, re-persists
// the credentials and recomputes the capability set from the new token.
func (m *Manager) ReplaceAccessToken(accessToken string) error {
	if accessToken == "" {
		return errors.New("empty access token")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.authenticated {
		return errors.New("no session to update")
	}

	if err := m.credRepo.Save(&entity.Credentials{
		User:         m.user,
		AccessToken:  accessToken,
		RefreshToken: m.refreshToken,
		ClinicID:     m.clinicID,
	}); err != nil {
		return errors.Wrap(err, "persist credentials")
	}

	m.accessToken = accessToken
	m.permissions = toSet(decodePermissions(accessToken))

	return nil
}

// Clear wipes durable storage and resets to the anonymous state. Idempotent.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.credRepo.Clear(); err != nil {
		return errors.Wrap(err, "clear credentials")
	}

	m.user = entity.User{}
	m.accessToken = ""
	m.refreshToken = ""
	m.clinicID = ""
	m.permissions = map[string]struct{}{}
	m.authenticated = false

	return nil
}

// HasCapability reports whether the session grants the capability token.
// The wildcard grants everything.
func (m *Manager) HasCapability(token string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.permissions[Wildcard]; ok {
		return true
	}
	_, ok := m.permissions[token]

	return ok
}

// HasAnyCapability reports whether any of the requested capability tokens
// is granted.
func (m *Manager) HasAnyCapability(tokens ...string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.permissions[Wildcard]; ok {
		return true
	}
	for _, token := range tokens {
		if _, ok := m.permissions[token]; ok {
			return true
		}
	}

	return false
}

// Authenticated reports whether a session is established.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.authenticated
}

// User returns the signed-in principal. Zero value when anonymous.
func (m *Manager) User() entity.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.user
}

// AccessToken returns the current bearer token, empty when anonymous.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.accessToken
}

// RefreshToken returns the current refresh token, empty when anonymous.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.refreshToken
}

// ClinicID returns the tenant identifier attached to every request.
func (m *Manager) ClinicID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.clinicID
}

// Permissions returns a copy of the capability set for display purposes.
func (m *Manager) Permissions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokens := make([]string, 0, len(m.permissions))
	for token := range m.permissions {
		tokens = append(tokens, token)
	}

	return tokens
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}

	return set
}
