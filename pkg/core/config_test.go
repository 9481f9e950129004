package core

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigPath = "/app/cfg.txt"

func writeConfig(t *testing.T, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/app", 0755))
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte(content), 0644))
	return fs
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
	}{
		{
			name:    "plain values",
			content: "Number of files = 5\nPath: /data/backups\n",
			want:    Config{RetainCount: 5, TargetPath: "/data/backups", Pattern: "*"},
		},
		{
			name:    "quoted number parses like unquoted",
			content: "Number of files = \"5\"\nPath: \"/data/backups\"\n",
			want:    Config{RetainCount: 5, TargetPath: "/data/backups", Pattern: "*"},
		},
		{
			name:    "windows path keeps drive colon",
			content: "Path: \"C:\\Backups\\db\"\nNumber of files = 3\n",
			want:    Config{RetainCount: 3, TargetPath: `C:\Backups\db`, Pattern: "*"},
		},
		{
			name:    "last occurrence wins",
			content: "Number of files = 1\nPath: /a\nNumber of files = 7\nPath: /b\n",
			want:    Config{RetainCount: 7, TargetPath: "/b", Pattern: "*"},
		},
		{
			name:    "unknown lines and indentation",
			content: "# retention settings\n\n  Number of files = 0  \nsomething else\n\tPath:   /srv/dumps  \n",
			want:    Config{RetainCount: 0, TargetPath: "/srv/dumps", Pattern: "*"},
		},
		{
			name:    "byte order mark on first line",
			content: "\uFEFFNumber of files = 2\r\nPath: /x\r\n",
			want:    Config{RetainCount: 2, TargetPath: "/x", Pattern: "*"},
		},
		{
			name:    "single quotes are kept",
			content: "Number of files = 1\nPath: '/x'\n",
			want:    Config{RetainCount: 1, TargetPath: "'/x'", Pattern: "*"},
		},
		{
			name:    "pattern directive",
			content: "Number of files = 4\nPath: /x\nPattern: \"*.bak\"\n",
			want:    Config{RetainCount: 4, TargetPath: "/x", Pattern: "*.bak"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := writeConfig(t, tt.content)

			cfg, err := ParseConfig(fs, testConfigPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    ConfigErrorKind
		target  error
	}{
		{"missing path", "Number of files = 5\n", ConfigIncomplete, ErrConfigIncomplete},
		{"missing count", "Path: /data\n", ConfigIncomplete, ErrConfigIncomplete},
		{"empty path", "Number of files = 5\nPath: \"\"\n", ConfigIncomplete, ErrConfigIncomplete},
		{"empty file", "", ConfigIncomplete, ErrConfigIncomplete},
		{"non numeric count", "Number of files = five\nPath: /data\n", ConfigParseError, ErrConfigParse},
		{"negative count", "Number of files = -1\nPath: /data\n", ConfigParseError, ErrConfigParse},
		{"count without equals", "Number of files 5\nPath: /data\n", ConfigParseError, ErrConfigParse},
		{"count split on first equals only", "Number of files = 5 = 6\nPath: /data\n", ConfigParseError, ErrConfigParse},
		{"single quoted count", "Number of files = '5'\nPath: /data\n", ConfigParseError, ErrConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := writeConfig(t, tt.content)

			cfg, err := ParseConfig(fs, testConfigPath)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.target)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.kind, cfgErr.Kind)
			assert.Equal(t, testConfigPath, cfgErr.Path)
		})
	}
}

func TestParseConfig_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := ParseConfig(fs, testConfigPath)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrConfigMissing)
	assert.NotErrorIs(t, err, ErrConfigIncomplete)
	assert.Contains(t, err.Error(), testConfigPath)
}
