// Package accounts signs users in against the DummyJSON demo accounts API.
// Credentials are forwarded as-is; there is no token refresh.
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/sources/upstream"
)

const Provider = "accounts"

type userResponse struct {
	ID          json.Number `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Image       string      `json:"image"`
	Token       string      `json:"token"`
	AccessToken string      `json:"accessToken"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type Client struct {
	api *upstream.Client
}

func New(opts upstream.Options) *Client {
	opts.Provider = Provider
	return &Client{api: upstream.New(opts)}
}

// Login exchanges credentials for the account profile.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.SessionUser, error) {
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return domain.SessionUser{}, apperror.ValidationFailed("username", "username and password are required")
	}

	var resp userResponse
	err := c.api.PostJSON(ctx, "auth/login", map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	}, &resp)
	if err != nil {
		return domain.SessionUser{}, rejected(err, "invalid credentials")
	}

	token := resp.AccessToken
	if token == "" {
		token = resp.Token
	}
	if token == "" || resp.ID.String() == "" {
		return domain.SessionUser{}, apperror.Unauthorized("login failed")
	}
	return toSessionUser(resp, token), nil
}

// Register creates the account. The returned user carries no token.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.SessionUser, error) {
	switch {
	case strings.TrimSpace(reg.Username) == "":
		return domain.SessionUser{}, apperror.ValidationFailed("username", "username is required")
	case reg.Password == "":
		return domain.SessionUser{}, apperror.ValidationFailed("password", "password is required")
	case reg.Email != "" && !strings.Contains(reg.Email, "@"):
		return domain.SessionUser{}, apperror.ValidationFailed("email", "email is not valid")
	}

	var resp userResponse
	if err := c.api.PostJSON(ctx, "users/add", reg, &resp); err != nil {
		return domain.SessionUser{}, rejected(err, "registration rejected")
	}
	if resp.ID.String() == "" {
		return domain.SessionUser{}, apperror.RequestFailed(Provider, errors.New("registration returned no id"))
	}
	return toSessionUser(resp, ""), nil
}

func toSessionUser(r userResponse, token string) domain.SessionUser {
	name := strings.TrimSpace(r.FirstName + " " + r.LastName)
	if name == "" {
		name = r.Username
	}
	return domain.SessionUser{
		ID:        r.ID.String(),
		Name:      name,
		Username:  r.Username,
		Email:     r.Email,
		AvatarURL: r.Image,
		Token:     token,
	}
}

// rejected turns a 400/401 answer into ErrUnauthorized with the provider's message.
func rejected(err error, fallback string) error {
	var se *upstream.StatusError
	if !errors.As(err, &se) || (se.Code != http.StatusBadRequest && se.Code != http.StatusUnauthorized) {
		return err
	}
	msg := fallback
	var body errorResponse
	if json.Unmarshal(se.Body, &body) == nil && body.Message != "" {
		msg = body.Message
	}
	return apperror.Unauthorized(msg)
}
