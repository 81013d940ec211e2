package api

import (
	"context"
	"net/url"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/errors"
	"vetadmin/internal/gateway"
	"vetadmin/internal/session"
)

// Auth signs users in and out. Login is a two-step flow: the clinic is
// looked up by its contact email first, then credentials are checked
// against that tenant.
type Auth struct {
	gw   *gateway.Gateway
	sess *session.Manager
}

// NewAuth is the constructor for Auth.
func NewAuth(gw *gateway.Gateway, sess *session.Manager) *Auth {
	return &Auth{gw: gw, sess: sess}
}

// LookupClinic resolves a tenant clinic by its contact email.
func (a *Auth) LookupClinic(ctx context.Context, email string) (*entity.Clinic, error) {
	query := url.Values{}
	query.Set("email", email)

	var clinic entity.Clinic
	if err := a.gw.Get(ctx, "clinics/lookup", query, &clinic); err != nil {
		return nil, err
	}

	return &clinic, nil
}

// Login authenticates against the backend and establishes the session from
// the returned principal and token pair.
func (a *Auth) Login(ctx context.Context, req entity.LoginRequest) (*entity.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp entity.LoginResponse
	if err := a.gw.Post(ctx, "auth/login", req, &resp); err != nil {
		return nil, err
	}

	if err := a.sess.Establish(resp.User, resp.AccessToken, resp.RefreshToken, resp.User.ClinicID.String()); err != nil {
		return nil, errors.Wrap(err, "establish session")
	}

	return &resp.User, nil
}

// Logout drops the session locally. The backend keeps no server-side
// session state beyond the refresh token's own expiry.
func (a *Auth) Logout() error {
	return a.sess.Clear()
}
