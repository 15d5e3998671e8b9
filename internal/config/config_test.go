package config_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"DefaultBookFile", config.DefaultBookFile},
		{"Prompt", config.Prompt},
		{"ICalProdid", config.ICalProdid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestPatterns_Compile guards against a typo turning a pattern into a runtime panic.
func TestPatterns_Compile(t *testing.T) {
	for _, p := range []string{config.PhonePattern, config.EmailPattern, config.BirthdayPattern} {
		_, err := regexp.Compile(p)
		assert.NoError(t, err, p)
	}
}

func TestDefaults_Sanity(t *testing.T) {
	s := config.DefaultSettings()
	assert.Equal(t, 20, s.PageSize)
	assert.Equal(t, "AddressBook.vcf", s.File)
	assert.Contains(t, config.SupportedLanguages, s.Language)
	assert.NoError(t, s.Validate())
	assert.Len(t, config.PageSeparator, 15)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
}

func TestLoadSettings_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "file: contacts.vcf\npage_size: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), config.FilePermUserRW))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "contacts.vcf", s.File)
	assert.Equal(t, 5, s.PageSize)
	assert.Equal(t, config.DefaultLanguage, s.Language, "Unset keys keep their defaults")
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Malformed YAML", "page_size: [1, 2\n"},
		{"Negative page size", "page_size: -3\n"},
		{"Unknown language", "language: xx\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), config.FilePermUserRW))

			_, err := config.LoadSettings(path)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	s := config.DefaultSettings()
	s.PageSize = 0
	assert.ErrorContains(t, s.Validate(), config.ErrPageSize)

	s = config.DefaultSettings()
	s.File = ""
	assert.EqualError(t, s.Validate(), config.ErrBookPathEmpty)
}
