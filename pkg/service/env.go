package service

import (
	"time"

	"github.com/neighborbank/cli/pkg/api"
	"github.com/neighborbank/cli/pkg/client"
	"github.com/neighborbank/cli/pkg/config"
	"github.com/neighborbank/cli/pkg/credentials"
	"github.com/neighborbank/cli/pkg/logger"
	"github.com/neighborbank/cli/pkg/session"
)

// env is what every service acts with: the API, who is acting and a clock.
type env struct {
	api     *api.Client
	session session.Session
	now     func() time.Time
}

// base lazily resolves the env from stored credentials and config.
type base struct {
	env *env
}

func (b *base) environment() (*env, error) {
	if b.env != nil {
		return b.env, nil
	}
	sess, err := CurrentSession()
	if err != nil {
		return nil, err
	}
	b.env = &env{api: api.Default(), session: sess, now: time.Now}
	return b.env, nil
}

// CurrentSession builds the session from stored credentials and installs
// the access token on the shared HTTP client.
func CurrentSession() (session.Session, error) {
	defaultLocation := config.GetString("session.default_location")

	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return session.Guest(defaultLocation), err
	}

	sess := session.FromCredentials(creds, defaultLocation)
	if sess.SignedIn() {
		client.SetAuthToken(creds.AccessToken)
	} else if creds != nil && creds.IsExpired() {
		logger.Warn("Stored credentials have expired, continuing as guest")
	}

	logger.Debug("Session resolved", "user_id", sess.UserID, "role", sess.Role.String(), "location", sess.Location)
	return sess, nil
}
