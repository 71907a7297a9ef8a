package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/neighborbank/cli/pkg/client"
	"github.com/neighborbank/cli/pkg/config"
	"github.com/neighborbank/cli/pkg/credentials"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/neighborbank/cli/pkg/logger"
	"github.com/neighborbank/cli/pkg/output"
	"github.com/neighborbank/cli/pkg/prompter"
	"github.com/neighborbank/cli/pkg/session"
)

// AuthService stores the identity handed over by the web sign-in flow.
type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// UseOptions describe the identity to act as.
type UseOptions struct {
	Token     string
	UserID    int64
	Role      string
	Nickname  string
	Location  string
	ExpiresIn time.Duration
}

// Use saves the identity. A missing token is prompted for without echo.
func (s *AuthService) Use(opts UseOptions) error {
	role := session.Role(strings.ToUpper(strings.TrimSpace(opts.Role)))
	if !role.Valid() {
		return clierrors.ValidationError("role", "must be C (customer) or B (banker)")
	}
	if opts.UserID <= 0 {
		return clierrors.ValidationError("user-id", "must be a positive number")
	}

	token := strings.TrimSpace(opts.Token)
	if token == "" {
		var err error
		token, err = prompter.PromptPassword("Access token: ")
		if err != nil {
			return err
		}
	}
	if token == "" {
		return clierrors.ValidationError("token", "cannot be empty")
	}

	creds := &credentials.Credentials{
		AccessToken: token,
		UserID:      opts.UserID,
		Nickname:    opts.Nickname,
		Role:        string(role),
		Location:    opts.Location,
	}
	if opts.ExpiresIn > 0 {
		creds.ExpiresAt = time.Now().Add(opts.ExpiresIn)
	}

	if err := credentials.Save(creds); err != nil {
		logger.Error("Failed to save credentials", "error", err)
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	client.SetAuthToken(token)

	sess := session.FromCredentials(creds, config.GetString("session.default_location"))
	output.PrintSuccess("✓ Acting as %s #%d in %s", sess.Role, sess.UserID, sess.Location)
	return nil
}

// Show prints the stored identity.
func (s *AuthService) Show() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}

	sess := session.FromCredentials(creds, config.GetString("session.default_location"))
	if !sess.SignedIn() {
		if creds != nil && creds.IsExpired() {
			output.PrintWarning("Stored session expired at %s", creds.ExpiresAt.Format(time.RFC3339))
		}
		output.PrintInfo("Browsing as guest in %s", sess.Location)
		return nil
	}

	expires := "never"
	if !creds.ExpiresAt.IsZero() {
		expires = creds.ExpiresAt.Format(time.RFC3339)
	}
	return output.PrintRecord("Session", []output.Field{
		{Key: "User ID", Value: sess.UserID},
		{Key: "Nickname", Value: sess.Nickname},
		{Key: "Role", Value: sess.Role.String()},
		{Key: "Location", Value: sess.Location},
		{Key: "Expires", Value: expires},
	}, map[string]interface{}{
		"userId":    sess.UserID,
		"nickname":  sess.Nickname,
		"role":      string(sess.Role),
		"location":  sess.Location,
		"expiresAt": creds.ExpiresAt,
	})
}

// Clear forgets the stored identity.
func (s *AuthService) Clear(force bool) error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}
	if creds == nil {
		output.PrintWarning("No stored session")
		return nil
	}

	if !force {
		confirm, err := prompter.PromptConfirm("Forget the stored session?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := credentials.Delete(); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	client.ClearAuthToken()

	output.PrintSuccess("✓ Session cleared")
	return nil
}
