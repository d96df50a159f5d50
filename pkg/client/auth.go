package client

import (
	"context"
	"fmt"

	"github.com/velourhq/velour/pkg/domain"
)

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// AuthResponse is the backend's answer to login and OTP verification.
type AuthResponse struct {
	Token  string                    `json:"token"`
	Role   domain.Role               `json:"role"`
	Status domain.RegistrationStatus `json:"status,omitempty"`
}

type registerResponse struct {
	OTPSent bool `json:"otp_sent"`
}

// Register creates an account and reports whether an OTP was dispatched.
// When a license attachment is present (salon sign-up) the request goes out
// as multipart form data; otherwise as JSON.
func (c *Client) Register(ctx context.Context, req RegisterRequest, license *FileAttachment) (bool, error) {
	var resp registerResponse
	if license != nil {
		fields := map[string]string{
			"email":    req.Email,
			"password": req.Password,
			"role":     string(req.Role),
		}
		if err := c.doMultipart(ctx, "POST", "/auth/register", fields, license, &resp); err != nil {
			return false, fmt.Errorf("client.Register: %w", err)
		}
		return resp.OTPSent, nil
	}
	if err := c.post(ctx, "/auth/register", req, &resp); err != nil {
		return false, fmt.Errorf("client.Register: %w", err)
	}
	return resp.OTPSent, nil
}

// VerifyOTP exchanges a 6-digit code for a session token.
func (c *Client) VerifyOTP(ctx context.Context, email, code string, role domain.Role) (*AuthResponse, error) {
	body := map[string]string{
		"email": email,
		"code":  code,
		"role":  string(role),
	}
	var resp AuthResponse
	if err := c.post(ctx, "/auth/verify-otp", body, &resp); err != nil {
		return nil, fmt.Errorf("client.VerifyOTP: %w", err)
	}
	return &resp, nil
}

// Login exchanges credentials for a session token. Role verification against
// the requested role is the caller's concern (see internal/auth).
func (c *Client) Login(ctx context.Context, email, password string, role domain.Role) (*AuthResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"role":     string(role),
	}
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return &resp, nil
}
