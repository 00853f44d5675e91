package gateway

import (
	"context"
	"fmt"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
)

// Login exchanges credentials for a bearer token. The login path is
// role-scoped: POST /exhibitor/login or /visitor/login.
func (c *Client) Login(ctx context.Context, role domain.Role, email, password string) (string, *domain.Principal, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"userType": string(role),
	}
	var resp struct {
		AccessToken string       `json:"accessToken"`
		Admin       principalDTO `json:"admin"`
	}
	if err := c.postJSON(ctx, "", fmt.Sprintf("/%s/login", role), body, &resp, "login failed"); err != nil {
		return "", nil, err
	}

	p := resp.Admin.toDomain()
	if p.Role == "" {
		p.Role = role
	}
	return resp.AccessToken, &p, nil
}

// WhoAmI fetches the authenticated principal's full record.
func (c *Client) WhoAmI(ctx context.Context, token string) (*domain.Principal, error) {
	var resp struct {
		Data principalDTO `json:"data"`
	}
	if err := c.postJSON(ctx, token, "/user/whoAmI", nil, &resp, "failed to load profile"); err != nil {
		return nil, err
	}
	p := resp.Data.toDomain()
	return &p, nil
}

// ChangePassword submits a password change on the role-scoped path.
func (c *Client) ChangePassword(ctx context.Context, token string, role domain.Role, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.postJSON(ctx, token, fmt.Sprintf("/%s/change-password", role), body, nil, "failed to change password")
}
