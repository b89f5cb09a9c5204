package hosts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedTable(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)
	require.Contains(t, table, "github-link")
	require.Contains(t, table, "linkedin-link")
	require.Contains(t, table, "telegram-link")
	require.NotEmpty(t, table.Suffixes("github-link"))
}

func TestParse_RejectsEmptyAndInvalid(t *testing.T) {
	_, err := Parse([]byte(""))
	require.Error(t, err)

	_, err = Parse([]byte("not: [valid: yaml"))
	require.Error(t, err)
}

func TestMatch_SuffixSemantics(t *testing.T) {
	table := Table{
		"github-link": {"github.com"},
		"tg-link":     {"t.me", "telegram.me"},
	}

	tests := []struct {
		linkID string
		host   string
		want   bool
	}{
		{"github-link", "github.com", true},
		{"github-link", "GitHub.Com", true},
		{"github-link", "gist.github.com", true},
		{"github-link", "github.com.", true},
		{"github-link", "notgithub.com", false},
		{"github-link", "github.com.evil.example", false},
		{"github-link", "", false},
		{"tg-link", "t.me", true},
		{"tg-link", "telegram.me", true},
		{"tg-link", "telegram.org", false},
		{"unknown-link", "github.com", false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, table.Match(tc.linkID, tc.host),
			"Match(%q, %q)", tc.linkID, tc.host)
	}
}
