package session

import (
	"io"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/domain/repository"
)

// memoryCredRepo is an in-memory CredentialRepository for tests.
type memoryCredRepo struct {
	creds *entity.Credentials
}

func (r *memoryCredRepo) Save(creds *entity.Credentials) error {
	copied := *creds
	r.creds = &copied

	return nil
}

func (r *memoryCredRepo) Load() (*entity.Credentials, error) {
	if r.creds == nil {
		return nil, repository.ErrCredentialsNotFound
	}

	return r.creds, nil
}

func (r *memoryCredRepo) Clear() error {
	r.creds = nil

	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestManager_StartsAnonymous(t *testing.T) {
	m := NewManager(&memoryCredRepo{}, testLogger())

	assert.False(t, m.Authenticated())
	assert.Empty(t, m.AccessToken())
	assert.Empty(t, m.Permissions())
	assert.False(t, m.HasCapability("owners.read"))
}

func TestManager_EstablishDerivesPermissions(t *testing.T) {
	repo := &memoryCredRepo{}
	m := NewManager(repo, testLogger())

	token := signedToken(t, jwt.MapClaims{
		"sub":         "vet@clinic.example",
		"permissions": []string{"owners.read", "invoices.write"},
	})

	err := m.Establish(entity.User{Email: "vet@clinic.example"}, token, "refresh-1", "clinic-1")
	require.NoError(t, err)

	assert.True(t, m.Authenticated())
	assert.True(t, m.HasCapability("owners.read"))
	assert.True(t, m.HasCapability("invoices.write"))
	assert.False(t, m.HasCapability("users.manage"))
	assert.True(t, m.HasAnyCapability("users.manage", "owners.read"))
	assert.False(t, m.HasAnyCapability("users.manage", "roles.manage"))

	require.NotNil(t, repo.creds)
	assert.Equal(t, token, repo.creds.AccessToken)
	assert.Equal(t, "clinic-1", repo.creds.ClinicID)
}

func TestManager_EstablishRejectsEmptyArguments(t *testing.T) {
	m := NewManager(&memoryCredRepo{}, testLogger())

	assert.Error(t, m.Establish(entity.User{}, "", "refresh", "clinic"))
	assert.Error(t, m.Establish(entity.User{}, "token", "", "clinic"))
	assert.Error(t, m.Establish(entity.User{}, "token", "refresh", ""))
	assert.False(t, m.Authenticated())
}

func TestManager_WildcardGrantsEverything(t *testing.T) {
	m := NewManager(&memoryCredRepo{}, testLogger())

	token := signedToken(t, jwt.MapClaims{"permissions": []string{Wildcard}})
	require.NoError(t, m.Establish(entity.User{}, token, "refresh", "clinic"))

	assert.True(t, m.HasCapability("anything.at.all"))
	assert.True(t, m.HasAnyCapability("whatever"))
}

func TestManager_MalformedTokenYieldsEmptySet(t *testing.T) {
	m := NewManager(&memoryCredRepo{}, testLogger())

	require.NoError(t, m.Establish(entity.User{}, "not-a-jwt", "refresh", "clinic"))

	// Still authenticated, just without any derived capabilities.
	assert.True(t, m.Authenticated())
	assert.Empty(t, m.Permissions())
	assert.False(t, m.HasCapability("owners.read"))
}

func TestManager_ClearIsIdempotent(t *testing.T) {
	repo := &memoryCredRepo{}
	m := NewManager(repo, testLogger())

	token := signedToken(t, jwt.MapClaims{"permissions": []string{"owners.read"}})
	require.NoError(t, m.Establish(entity.User{}, token, "refresh", "clinic"))

	require.NoError(t, m.Clear())
	assert.False(t, m.Authenticated())
	assert.Empty(t, m.AccessToken())
	assert.Nil(t, repo.creds)

	require.NoError(t, m.Clear())
	assert.False(t, m.Authenticated())
}

func TestManager_ReplaceAccessTokenRecomputesPermissions(t *testing.T) {
	repo := &memoryCredRepo{}
	m := NewManager(repo, testLogger())

	first := signedToken(t, jwt.MapClaims{"permissions": []string{"owners.read"}})
	require.NoError(t, m.Establish(entity.User{}, first, "refresh", "clinic"))
	require.True(t, m.HasCapability("owners.read"))

	second := signedToken(t, jwt.MapClaims{"permissions": []string{"invoices.write"}})
	require.NoError(t, m.ReplaceAccessToken(second))

	assert.False(t, m.HasCapability("owners.read"))
	assert.True(t, m.HasCapability("invoices.write"))
	assert.Equal(t, second, repo.creds.AccessToken)
	assert.Equal(t, "refresh", m.RefreshToken())
}

func TestManager_ReplaceAccessTokenRequiresSession(t *testing.T) {
	m := NewManager(&memoryCredRepo{}, testLogger())

	assert.Error(t, m.ReplaceAccessToken("token"))
	assert.Error(t, m.ReplaceAccessToken(""))
}

func TestManager_RestoresPersistedSession(t *testing.T) {
	repo := &memoryCredRepo{}
	token := signedToken(t, jwt.MapClaims{"permissions": []string{"owners.read"}})
	require.NoError(t, repo.Save(&entity.Credentials{
		User:         entity.User{Email: "vet@clinic.example"},
		AccessToken:  token,
		RefreshToken: "refresh-1",
		ClinicID:     "clinic-1",
	}))

	m := NewManager(repo, testLogger())

	assert.True(t, m.Authenticated())
	assert.Equal(t, "vet@clinic.example", m.User().Email)
	assert.Equal(t, "clinic-1", m.ClinicID())
	assert.True(t, m.HasCapability("owners.read"))
}

func TestDecodePermissions_ClaimShapes(t *testing.T) {
	tests := []struct {
		name     string
		token    func(t *testing.T) string
		expected []string
	}{
		{
			name: "native string list",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"permissions": []string{"a", "b"}})
			},
			expected: []string{"a", "b"},
		},
		{
			name: "json encoded string",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"permissions": `["a","b"]`})
			},
			expected: []string{"a", "b"},
		},
		{
			name: "mixed list keeps only strings",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"permissions": []any{"a", 7, "b"}})
			},
			expected: []string{"a", "b"},
		},
		{
			name: "claim missing",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"sub": "someone"})
			},
			expected: nil,
		},
		{
			name: "claim of wrong type",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"permissions": 42})
			},
			expected: nil,
		},
		{
			name: "string claim that is not json",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"permissions": "owners.read"})
			},
			expected: nil,
		},
		{
			name: "garbage token",
			token: func(t *testing.T) string {
				return "definitely.not.ajwt"
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decodePermissions(tt.token(t)))
		})
	}
}
