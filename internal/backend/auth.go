package backend

import (
	"context"
	"net/http"

	auth "github.com/bloomshop/storefront/internal/auth/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (auth.User, string, error) {
	var resp authResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return auth.User{}, "", err
	}
	return auth.User{ID: resp.ID, Username: resp.Username, Email: resp.Email}, resp.Token, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) (auth.User, string, error) {
	var resp authResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", "", registerRequest{Username: username, Email: email, Password: password}, &resp)
	if err != nil {
		return auth.User{}, "", err
	}
	return auth.User{ID: resp.ID, Username: resp.Username, Email: resp.Email}, resp.Token, nil
}
