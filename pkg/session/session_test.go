package session

import (
	"testing"
	"time"

	"github.com/neighborbank/cli/pkg/credentials"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromCredentials(t *testing.T) {
	t.Run("nil credentials give a guest", func(t *testing.T) {
		s := FromCredentials(nil, "성동구")
		assert.False(t, s.SignedIn())
		assert.Equal(t, "성동구", s.Location)
		assert.Equal(t, "guest", s.Role.String())
	})

	t.Run("expired credentials give a guest", func(t *testing.T) {
		s := FromCredentials(&credentials.Credentials{
			AccessToken: "t", UserID: 3, Role: "C", ExpiresAt: time.Now().Add(-time.Hour),
		}, "성동구")
		assert.False(t, s.SignedIn())
	})

	t.Run("valid customer", func(t *testing.T) {
		s := FromCredentials(&credentials.Credentials{
			AccessToken: "t", UserID: 3, Role: "C", Location: "마포구", Nickname: "n",
		}, "성동구")
		assert.True(t, s.IsCustomer())
		assert.False(t, s.IsBanker())
		assert.Equal(t, "마포구", s.Location)
		assert.True(t, s.Owns(3))
		assert.False(t, s.Owns(4))
	})

	t.Run("missing location falls back", func(t *testing.T) {
		s := FromCredentials(&credentials.Credentials{AccessToken: "t", UserID: 9, Role: "B"}, "성동구")
		assert.True(t, s.IsBanker())
		assert.Equal(t, "성동구", s.Location)
	})
}

func TestRequire(t *testing.T) {
	guest := Guest("성동구")
	assert.True(t, clierrors.IsType(guest.Require("like posts"), clierrors.ErrorTypeAuthRequired))

	customer := Session{UserID: 1, Role: RoleCustomer}
	banker := Session{UserID: 2, Role: RoleBanker}

	assert.NoError(t, customer.Require("like posts"))
	assert.NoError(t, customer.RequireCustomer("scrap"))
	assert.True(t, clierrors.IsType(banker.RequireCustomer("scrap"), clierrors.ErrorTypeForbidden))

	assert.NoError(t, banker.RequireBanker("answer questions"))
	assert.True(t, clierrors.IsType(customer.RequireBanker("answer questions"), clierrors.ErrorTypeForbidden))
	assert.True(t, clierrors.IsType(guest.RequireBanker("answer questions"), clierrors.ErrorTypeAuthRequired))
}

func TestUnknownRoleIsNotSignedIn(t *testing.T) {
	s := Session{UserID: 5, Role: Role("X")}
	assert.False(t, s.SignedIn())
}
