package credfile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/domain/repository"
)

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	store := NewAtPath(path)

	saved := &entity.Credentials{
		User:         entity.User{Email: "vet@clinic.example"},
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ClinicID:     "clinic-1",
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewAtPath(path)

	require.NoError(t, store.Save(&entity.Credentials{AccessToken: "access-1"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewAtPath(filepath.Join(t.TempDir(), "credentials.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, repository.ErrCredentialsNotFound)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewAtPath(path).Load()
	assert.ErrorIs(t, err, repository.ErrCredentialsNotFound)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewAtPath(path)

	require.NoError(t, store.Save(&entity.Credentials{AccessToken: "access-1"}))
	require.NoError(t, store.Clear())

	_, err := store.Load()
	assert.ErrorIs(t, err, repository.ErrCredentialsNotFound)

	require.NoError(t, store.Clear())
}
