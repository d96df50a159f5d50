// Package auth is the gateway between the screens and the backend's auth
// endpoints. It validates input locally, performs register/verify/login
// calls, and owns every write to the session store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/velourhq/velour/internal/session"
	"github.com/velourhq/velour/pkg/client"
	"github.com/velourhq/velour/pkg/domain"
)

var (
	// ErrRoleMismatch means the backend issued a token for a different role
	// than the one requested. Nothing is written to the session store.
	ErrRoleMismatch = errors.New("account role does not match the requested role")
	// ErrLicenseRequired means a salon registration was attempted without a
	// business license file. Raised before any network call.
	ErrLicenseRequired = errors.New("salon registration requires a business license file")
	// ErrPendingApproval means the salon account passed OTP verification but
	// is still waiting for manual review; no session exists yet.
	ErrPendingApproval = errors.New("salon account is pending approval")
)

var otpCodeRe = regexp.MustCompile(`^\d{6}$`)

// RegisterInput is the validated sign-up form.
type RegisterInput struct {
	Email       string      `validate:"required,email"`
	Password    string      `validate:"required,min=8"`
	Role        domain.Role `validate:"required,oneof=consumer salon"`
	LicensePath string
}

// Gateway orchestrates authentication against the API and the session store.
type Gateway struct {
	api      *client.Client
	store    *session.Store
	validate *validator.Validate
	log      zerolog.Logger
}

// New creates a Gateway.
func New(api *client.Client, store *session.Store, log zerolog.Logger) *Gateway {
	return &Gateway{
		api:      api,
		store:    store,
		validate: validator.New(),
		log:      log,
	}
}

// Register creates an account and reports whether an OTP was dispatched.
// All field validation happens before any network I/O.
func (g *Gateway) Register(ctx context.Context, in RegisterInput) (bool, error) {
	if err := g.validate.Struct(in); err != nil {
		return false, validationError(err)
	}
	if in.Role == domain.RoleSalon && strings.TrimSpace(in.LicensePath) == "" {
		return false, ErrLicenseRequired
	}

	var license *client.FileAttachment
	if in.Role == domain.RoleSalon {
		f, err := os.Open(in.LicensePath)
		if err != nil {
			return false, fmt.Errorf("open license file: %w", err)
		}
		defer f.Close() //nolint:errcheck
		license = &client.FileAttachment{
			Field:  "business_license",
			Name:   filepath.Base(in.LicensePath),
			Reader: f,
		}
	}

	sent, err := g.api.Register(ctx, client.RegisterRequest{
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	}, license)
	if err != nil {
		g.log.Warn().Err(err).Str("email", in.Email).Str("role", string(in.Role)).Msg("registration failed")
		return false, err
	}
	g.log.Info().Str("email", in.Email).Str("role", string(in.Role)).Bool("otp_sent", sent).Msg("registered")
	return sent, nil
}

// VerifyOTP exchanges the 6-digit code for a session and persists it. A
// malformed code fails locally. Salons still pending manual review get
// ErrPendingApproval and no session.
func (g *Gateway) VerifyOTP(ctx context.Context, email, code string, role domain.Role) (domain.Session, error) {
	code = strings.TrimSpace(code)
	if !otpCodeRe.MatchString(code) {
		return domain.Session{}, &client.APIError{
			Message: "code must be 6 digits",
			Kind:    client.KindInvalidCode,
		}
	}

	resp, err := g.api.VerifyOTP(ctx, email, code, role)
	if err != nil {
		return domain.Session{}, err
	}
	if resp.Status == domain.StatusPendingApproval || resp.Token == "" {
		g.log.Info().Str("email", email).Msg("otp verified, awaiting approval")
		return domain.Session{}, ErrPendingApproval
	}
	return g.establish(resp.Token, role, email)
}

// Login exchanges credentials for a session and persists it. A token issued
// for a different role than requested is rejected without touching the
// session store.
func (g *Gateway) Login(ctx context.Context, email, password string, role domain.Role) (domain.Session, error) {
	resp, err := g.api.Login(ctx, email, password, role)
	if err != nil {
		g.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return domain.Session{}, err
	}
	if resp.Role != role {
		g.log.Warn().Str("email", email).Str("requested", string(role)).Str("returned", string(resp.Role)).Msg("role mismatch")
		return domain.Session{}, ErrRoleMismatch
	}
	return g.establish(resp.Token, role, email)
}

// Logout clears the session store unconditionally and drops the client
// token. Token invalidation, if any, is a backend concern.
func (g *Gateway) Logout() error {
	g.api.SetToken("")
	if err := g.store.Clear(); err != nil {
		return err
	}
	g.log.Info().Msg("logged out")
	return nil
}

func (g *Gateway) establish(token string, role domain.Role, email string) (domain.Session, error) {
	if err := g.store.Save(token, role); err != nil {
		return domain.Session{}, err
	}
	g.api.SetToken(token)
	g.log.Info().Str("email", email).Str("role", string(role)).Msg("session established")
	return domain.Session{Token: token, Role: role}, nil
}

// validationError flattens validator output into one APIError with
// human-readable, per-field messages, so screens can show it inline.
func validationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return &client.APIError{
		Message: strings.Join(msgs, "; "),
		Kind:    client.KindValidation,
	}
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
