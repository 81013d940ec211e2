// Package gateway is the request pipeline between the client and the
// clinic backend. It speaks JSON, attaches the session's bearer token and
// tenant header to every call, and performs exactly one silent token
// refresh when the backend answers 401.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"vetadmin/config"
	domainerrors "vetadmin/internal/domain/errors"
	"vetadmin/internal/errors"
	"vetadmin/internal/session"
)

const (
	headerClinicID    = "X-Clinic-Id"
	refreshPath       = "auth/refresh"
	contentTypeJSON   = "application/json"
	maxErrorBodyBytes = 4 << 10
)

// Gateway executes requests against the backend on behalf of the current
// session.
type Gateway struct {
	baseURL string
	client  *http.Client
	sess    *session.Manager
	logger  *slog.Logger

	// refreshMu serializes silent refresh attempts; a waiter whose token
	// was already replaced while it queued skips its own refresh, so
	// concurrent 401s produce a single refresh call.
	refreshMu sync.Mutex
}

// New is the constructor for Gateway.
func New(cfg *config.Config, sess *session.Manager, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.API.Timeout},
		sess:    sess,
		logger:  logger,
	}
}

// PageQuery builds the standard pagination parameters. Page is zero-based.
func PageQuery(page, size int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	return query
}

// Get performs a GET request and decodes the JSON response into out.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with a JSON body.
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

// Put performs a PUT request with a JSON body.
func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.doJSON(ctx, http.MethodPut, path, nil, body, out)
}

// Patch performs a PATCH request with an optional JSON body.
func (g *Gateway) Patch(ctx context.Context, path string, body, out any) error {
	return g.doJSON(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete performs a DELETE request.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// PostMultipart performs a POST with a multipart form built by fill, used
// for file uploads. The response is decoded into out when non-nil.
func (g *Gateway) PostMultipart(ctx context.Context, path string, fill func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := fill(writer); err != nil {
		return errors.Wrap(err, "build multipart form")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "close multipart form")
	}

	resp, err := g.do(ctx, http.MethodPost, path, nil, writer.FormDataContentType(), buf.Bytes())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeInto(resp.Body, out)
}

// Download performs a GET request and returns the raw body along with the
// response content type.
func (g *Gateway) Download(ctx context.Context, path string) ([]byte, string, error) {
	resp, err := g.do(ctx, http.MethodGet, path, nil, "", nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "read download body")
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func (g *Gateway) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		payload = data
		contentType = contentTypeJSON
	}

	resp, err := g.do(ctx, method, path, query, contentType, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeInto(resp.Body, out)
}

// do runs one logical request. The attempt counter makes the retry budget
// explicit: attempt 0 may trigger a silent refresh on a 401, attempt 1 is
// terminal whatever the backend says.
func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, contentType string, payload []byte) (*http.Response, error) {
	requestURL := g.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
		if err != nil {
			return nil, errors.Wrap(err, "build request")
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		sentToken := g.sess.AccessToken()
		if sentToken != "" {
			req.Header.Set("Authorization", "Bearer "+sentToken)
		}
		if clinicID := g.sess.ClinicID(); clinicID != "" {
			req.Header.Set(headerClinicID, clinicID)
		}

		resp, err := g.client.Do(req)
		if err != nil {
			// Network failures are passed through, never retried here.
			return nil, errors.Wrapf(err, "%s %s", method, path)
		}

		if resp.StatusCode == http.StatusUnauthorized {
			drain(resp.Body)

			if attempt == 0 {
				if refreshErr := g.refresh(ctx, sentToken); refreshErr != nil {
					g.logger.Info("Silent refresh failed, clearing session", slog.Any("error", refreshErr))
					_ = g.sess.Clear()

					return nil, domainerrors.ErrSessionExpired.WrapMessage("token refresh failed")
				}

				continue
			}

			// Still unauthorized with a freshly issued token: give up.
			_ = g.sess.Clear()

			return nil, domainerrors.ErrSessionExpired.WrapMessage("request unauthorized after refresh")
		}

		if resp.StatusCode >= http.StatusBadRequest {
			defer resp.Body.Close()

			return nil, decodeError(resp)
		}

		g.logger.Debug("Request completed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))

		return resp, nil
	}
}

// refresh exchanges the stored refresh token for a new access token and
// installs it in the session. The call goes out without session headers.
// staleToken is the access token the 401 was earned with: when another
// request already replaced it while this one waited on the mutex, the
// refresh token has been spent and a second exchange must not go out.
func (g *Gateway) refresh(ctx context.Context, staleToken string) error {
	g.refreshMu.Lock()
	defer g.refreshMu.Unlock()

	if current := g.sess.AccessToken(); current != "" && current != staleToken {
		return nil
	}

	refreshToken := g.sess.RefreshToken()
	if refreshToken == "" {
		return errors.New("no refresh token")
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return errors.Wrap(err, "encode refresh request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/"+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build refresh request")
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "refresh request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("refresh rejected with status %d", resp.StatusCode)
	}

	var refreshed struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&refreshed); err != nil {
		return errors.Wrap(err, "decode refresh response")
	}

	return g.sess.ReplaceAccessToken(refreshed.AccessToken)
}

func decodeInto(body io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, body)

		return nil
	}
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response body")
	}

	return nil
}

// decodeError turns a non-2xx response into a RequestError, extracting the
// human-readable message field when the body carries one.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var payload domainerrors.ErrorPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.Message == "" {
		payload = domainerrors.ErrorPayload{
			Message: strings.TrimSpace(string(data)),
			Status:  resp.StatusCode,
		}
	}

	return domainerrors.NewRequestError(resp.StatusCode, payload)
}

func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxErrorBodyBytes))
	body.Close()
}
