package credentials

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/neighborbank/cli/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCredentialsIsExpired validates token expiration check
func TestCredentialsIsExpired(t *testing.T) {
	testCases := []struct {
		expiresAt time.Time
		expect    bool
		name      string
	}{
		{time.Now().Add(-1 * time.Hour), true, "past expiration"},
		{time.Now().Add(1 * time.Hour), false, "future expiration"},
		{time.Time{}, false, "no expiry"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creds := &Credentials{AccessToken: "test_token", ExpiresAt: tc.expiresAt}
			assert.Equal(t, tc.expect, creds.IsExpired())
		})
	}
}

// TestCredentialsIsValid validates credential validity check
func TestCredentialsIsValid(t *testing.T) {
	testCases := []struct {
		accessToken string
		userID      int64
		expiresAt   time.Time
		expect      bool
		name        string
	}{
		{"valid_token", 7, time.Now().Add(1 * time.Hour), true, "valid credentials"},
		{"", 7, time.Now().Add(1 * time.Hour), false, "empty access token"},
		{"valid_token", 0, time.Now().Add(1 * time.Hour), false, "missing user id"},
		{"valid_token", 7, time.Now().Add(-1 * time.Hour), false, "expired token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creds := &Credentials{AccessToken: tc.accessToken, UserID: tc.userID, ExpiresAt: tc.expiresAt}
			assert.Equal(t, tc.expect, creds.IsValid())
		})
	}
}

func TestSaveLoadDelete(t *testing.T) {
	require.NoError(t, config.Init(filepath.Join(t.TempDir(), "config.toml")))

	creds, err := Load()
	require.NoError(t, err)
	assert.Nil(t, creds, "no credentials before first save")

	saved := &Credentials{
		AccessToken: "token-1",
		UserID:      12,
		Nickname:    "동네주민",
		Role:        "C",
		Location:    "성동구",
	}
	require.NoError(t, Save(saved))

	info, err := os.Stat(config.GetCredentialsPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.AccessToken, loaded.AccessToken)
	assert.Equal(t, saved.UserID, loaded.UserID)
	assert.Equal(t, saved.Nickname, loaded.Nickname)
	assert.Equal(t, saved.Role, loaded.Role)
	assert.Equal(t, saved.Location, loaded.Location)

	require.NoError(t, Delete())
	require.NoError(t, Delete(), "deleting twice is fine")

	loaded, err = Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
