package cmd

import (
	"bytes"
	"testing"

	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/neighborbank/cli/pkg/session"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID("post-id", "11")
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	for _, arg := range []string{"", "abc", "0", "-3"} {
		_, err := parseID("post-id", arg)
		assert.True(t, clierrors.IsType(err, clierrors.ErrorTypeValidation), arg)
	}
}

func TestCommandTree(t *testing.T) {
	paths := [][]string{
		{"auth", "use"},
		{"feed", "qna"},
		{"feed", "community"},
		{"question", "ask"},
		{"question", "answer"},
		{"post", "like"},
		{"post", "scrap"},
		{"district", "bankers"},
		{"my", "scraps"},
		{"my", "profile", "edit"},
		{"my", "profile", "card"},
		{"config", "set"},
		{"completion"},
	}
	for _, path := range paths {
		c, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], c.Name())
	}
}

func TestCompletion_WritesScript(t *testing.T) {
	var buf bytes.Buffer
	completionCmd.SetOut(&buf)
	t.Cleanup(func() { completionCmd.SetOut(nil) })

	require.NoError(t, completionCmd.RunE(completionCmd, []string{"fish"}))
	assert.Contains(t, buf.String(), "neighborbank")
}

func TestCompleteSort_FollowsRole(t *testing.T) {
	prev := completionRole
	t.Cleanup(func() { completionRole = prev })

	completionRole = func() session.Role { return session.RoleBanker }
	names, directive := completeSort(feedQnaCmd, nil, "")
	assert.Equal(t, []string{"latest"}, names)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	completionRole = func() session.Role { return session.RoleCustomer }
	names, _ = completeSort(feedQnaCmd, nil, "")
	assert.Equal(t, []string{"latest", "helpful"}, names)
}
