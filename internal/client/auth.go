package client

import (
	"context"
	"net/http"

	"github.com/gadgetstore/storefront/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

// Login authenticates against POST /auth/login. The request carries no
// bearer token; the returned session carries the new one.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	var resp loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{User: resp.User, AccessToken: resp.AccessToken}, nil
}
