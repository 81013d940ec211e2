package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetadmin/config"
	"vetadmin/internal/domain/entity"
	domainerrors "vetadmin/internal/domain/errors"
	"vetadmin/internal/errors"
	"vetadmin/internal/infra/credfile"
	"vetadmin/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.Timeout = 5 * time.Second

	return cfg
}

func newTestSession(t *testing.T) *session.Manager {
	t.Helper()

	repo := credfile.NewAtPath(filepath.Join(t.TempDir(), "credentials.json"))

	return session.NewManager(repo, testLogger())
}

func establish(t *testing.T, sess *session.Manager, accessToken string) {
	t.Helper()

	err := sess.Establish(entity.User{Email: "vet@clinic.example"}, accessToken, "refresh-1", "clinic-1")
	require.NoError(t, err)
}

func TestGateway_AttachesSessionHeaders(t *testing.T) {
	var gotAuth, gotClinic string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotClinic = r.Header.Get("X-Clinic-Id")
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))
	defer server.Close()

	sess := newTestSession(t)
	establish(t, sess, "access-1")
	gw := New(testConfig(server.URL), sess, testLogger())

	var out map[string]string
	require.NoError(t, gw.Get(context.Background(), "owners", nil, &out))

	assert.Equal(t, "Bearer access-1", gotAuth)
	assert.Equal(t, "clinic-1", gotClinic)
	assert.Equal(t, "yes", out["ok"])
}

func TestGateway_AnonymousRequestsCarryNoSessionHeaders(t *testing.T) {
	var sawAuth, sawClinic bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_, sawClinic = r.Header["X-Clinic-Id"]
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	gw := New(testConfig(server.URL), newTestSession(t), testLogger())

	var out map[string]string
	require.NoError(t, gw.Get(context.Background(), "clinics/lookup", nil, &out))

	assert.False(t, sawAuth)
	assert.False(t, sawClinic)
}

func TestGateway_SilentRefreshRetriesOnce(t *testing.T) {
	var refreshCalls, requestCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-1", body["refreshToken"])
		assert.Empty(t, r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "access-2"})
	})
	mux.HandleFunc("/owners", func(w http.ResponseWriter, r *http.Request) {
		requestCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer access-2" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	sess := newTestSession(t)
	establish(t, sess, "access-1")
	gw := New(testConfig(server.URL), sess, testLogger())

	var out map[string]string
	require.NoError(t, gw.Get(context.Background(), "owners", nil, &out))

	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(2), requestCalls.Load())
	assert.Equal(t, "access-2", sess.AccessToken())
	assert.True(t, sess.Authenticated())
}

func TestGateway_RefreshSkipsWhenTokenAlreadyReplaced(t *testing.T) {
	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		calls := refreshCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": fmt.Sprintf("access-%d", calls+1)})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	sess := newTestSession(t)
	establish(t, sess, "access-1")
	gw := New(testConfig(server.URL), sess, testLogger())

	// First expired request wins the exchange.
	require.NoError(t, gw.refresh(context.Background(), "access-1"))
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, "access-2", sess.AccessToken())

	// A request that was 401-ed with the old token and then queued on the
	// mutex must not spend the refresh token again.
	require.NoError(t, gw.refresh(context.Background(), "access-1"))
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, "access-2", sess.AccessToken())

	// A genuine later expiry of the replacement token still refreshes.
	require.NoError(t, gw.refresh(context.Background(), "access-2"))
	assert.Equal(t, int32(2), refreshCalls.Load())
	assert.Equal(t, "access-3", sess.AccessToken())
}

func TestGateway_SecondUnauthorizedIsTerminal(t *testing.T) {
	var refreshCalls, requestCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "access-2"})
	})
	mux.HandleFunc("/owners", func(w http.ResponseWriter, r *http.Request) {
		requestCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	sess := newTestSession(t)
	establish(t, sess, "access-1")
	gw := New(testConfig(server.URL), sess, testLogger())

	err := gw.Get(context.Background(), "owners", nil, &map[string]string{})
	require.Error(t, err)

	// Exactly one refresh and two protected attempts, never a third.
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(2), requestCalls.Load())
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
	assert.False(t, sess.Authenticated())
}

func TestGateway_FailedRefreshClearsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/owners", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	sess := newTestSession(t)
	establish(t, sess, "access-1")
	gw := New(testConfig(server.URL), sess, testLogger())

	err := gw.Get(context.Background(), "owners", nil, &map[string]string{})
	require.Error(t, err)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.AccessToken())
}

func TestGateway_AnonymousUnauthorizedDoesNotRefresh(t *testing.T) {
	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})
	mux.HandleFunc("/owners", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	gw := New(testConfig(server.URL), newTestSession(t), testLogger())

	err := gw.Get(context.Background(), "owners", nil, &map[string]string{})
	require.Error(t, err)

	// Without a refresh token there is nothing to exchange.
	assert.Equal(t, int32(0), refreshCalls.Load())
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestGateway_NonUnauthorizedErrorsPassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "owner not found",
			"status":  404,
		})
	}))
	defer server.Close()

	sess := newTestSession(t)
	establish(t, sess, "access-1")
	gw := New(testConfig(server.URL), sess, testLogger())

	err := gw.Get(context.Background(), "owners/42", nil, &map[string]string{})
	require.Error(t, err)

	var reqErr *domainerrors.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusNotFound, reqErr.HTTPCode())
	assert.Equal(t, "owner not found", reqErr.Message())

	// The session survives non-401 failures.
	assert.True(t, sess.Authenticated())
}

func TestGateway_DecodesPaginatedResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("size"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content":       []map[string]string{{"firstName": "Ana"}, {"firstName": "Luis"}},
			"totalElements": 52,
			"totalPages":    3,
			"size":          25,
			"number":        2,
		})
	}))
	defer server.Close()

	sess := newTestSession(t)
	establish(t, sess, "access-1")
	gw := New(testConfig(server.URL), sess, testLogger())

	var page entity.Page[entity.Owner]
	require.NoError(t, gw.Get(context.Background(), "owners", PageQuery(2, 25), &page))

	assert.Equal(t, int64(52), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, "Ana", page.Content[0].FirstName)
}

func TestGateway_DownloadReturnsRawBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer server.Close()

	sess := newTestSession(t)
	establish(t, sess, "access-1")
	gw := New(testConfig(server.URL), sess, testLogger())

	data, contentType, err := gw.Download(context.Background(), "lab-reports/1/download")
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}
