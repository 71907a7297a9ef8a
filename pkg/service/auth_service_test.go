package service

import (
	"testing"
	"time"

	"github.com/neighborbank/cli/pkg/credentials"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/neighborbank/cli/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_UseAndShow(t *testing.T) {
	buf := setup(t, "text")
	s := NewAuthService()

	err := s.Use(UseOptions{Token: "tok", UserID: 42, Role: "c", Nickname: "이웃", Location: "광진구", ExpiresIn: time.Hour})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Acting as")

	creds, err := credentials.Load()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "tok", creds.AccessToken)
	assert.Equal(t, "C", creds.Role)

	sess, err := CurrentSession()
	require.NoError(t, err)
	assert.True(t, sess.IsCustomer())
	assert.Equal(t, "광진구", sess.Location)

	buf.Reset()
	require.NoError(t, s.Show())
	assert.Contains(t, buf.String(), "Nickname: 이웃")
}

func TestAuthService_UsePromptsForToken(t *testing.T) {
	setup(t, "text")
	withInput(t, "secret")

	require.NoError(t, NewAuthService().Use(UseOptions{UserID: 9, Role: "B"}))

	creds, err := credentials.Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", creds.AccessToken)
	assert.Equal(t, string(session.RoleBanker), creds.Role)
}

func TestAuthService_UseValidation(t *testing.T) {
	setup(t, "text")
	s := NewAuthService()

	err := s.Use(UseOptions{Token: "tok", UserID: 1, Role: "admin"})
	assert.True(t, clierrors.IsType(err, clierrors.ErrorTypeValidation))

	err = s.Use(UseOptions{Token: "tok", UserID: 0, Role: "C"})
	assert.True(t, clierrors.IsType(err, clierrors.ErrorTypeValidation))
}

func TestAuthService_ShowGuest(t *testing.T) {
	buf := setup(t, "text")

	require.NoError(t, NewAuthService().Show())
	assert.Contains(t, buf.String(), "Browsing as guest in 성동구")
}

func TestAuthService_Clear(t *testing.T) {
	buf := setup(t, "text")
	s := NewAuthService()
	require.NoError(t, s.Use(UseOptions{Token: "tok", UserID: 42, Role: "C"}))

	require.NoError(t, s.Clear(true))
	assert.Contains(t, buf.String(), "Session cleared")

	creds, err := credentials.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)

	buf.Reset()
	require.NoError(t, s.Clear(true))
	assert.Contains(t, buf.String(), "No stored session")
}
