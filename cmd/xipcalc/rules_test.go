package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ao-apps/ao-net-types-sub000/pkg/util/xip"
)

func writeRuleFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRules_yaml(t *testing.T) {
	path := writeRuleFile(t, "rules.yaml", `prefixes:
  - 10.0.0.0/25
  - 10.0.0.128/25
  - 2001:db8::/32
`)

	prefixes, err := loadRules(path)
	require.NoError(t, err)
	assert.Equal(t, []xip.Prefix{
		xip.MustParsePrefix("10.0.0.0/25"),
		xip.MustParsePrefix("10.0.0.128/25"),
		xip.MustParsePrefix("2001:db8::/32"),
	}, prefixes)
}

func TestLoadRules_json(t *testing.T) {
	path := writeRuleFile(t, "rules.json", `{"prefixes": ["192.0.2.0/24", "198.51.100.0/24"]}`)

	prefixes, err := loadRules(path)
	require.NoError(t, err)
	assert.Equal(t, []xip.Prefix{
		xip.MustParsePrefix("192.0.2.0/24"),
		xip.MustParsePrefix("198.51.100.0/24"),
	}, prefixes)
}

func TestLoadRules_empty(t *testing.T) {
	path := writeRuleFile(t, "rules.yaml", "")

	prefixes, err := loadRules(path)
	require.NoError(t, err)
	assert.Empty(t, prefixes)
}

func TestLoadRules_errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		path := writeRuleFile(t, "rules.toml", "prefixes = []")
		_, err := loadRules(path)
		var usageErr *usageError
		require.ErrorAs(t, err, &usageErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadRules(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid prefix in file", func(t *testing.T) {
		path := writeRuleFile(t, "rules.yaml", "prefixes:\n  - 10.0.0.0/99\n")
		_, err := loadRules(path)
		var usageErr *usageError
		require.ErrorAs(t, err, &usageErr)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeRuleFile(t, "rules.yaml", "prefixes: [unclosed\n")
		_, err := loadRules(path)
		require.Error(t, err)
	})
}

func TestCmdMerge_withRuleFile(t *testing.T) {
	path := writeRuleFile(t, "rules.yaml", `prefixes:
  - 10.0.0.0/25
  - 10.0.0.128/25
`)

	var buf bytes.Buffer
	require.NoError(t, cmdMerge(&buf, path, []string{"10.0.1.0/24"}))
	assert.Equal(t, "10.0.0.0/23\n", buf.String())
}
