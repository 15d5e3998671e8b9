package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Settings holds the user-tunable options of a session.
// Values come from defaults, then the YAML settings file, then CLI flags.
type Settings struct {
	File     string `yaml:"file"`
	PageSize int    `yaml:"page_size"`
	Language string `yaml:"language"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		File:     DefaultBookFile,
		PageSize: DefaultPageSize,
		Language: DefaultLanguage,
	}
}

// DefaultSettingsPath returns the settings file location under the XDG config home.
func DefaultSettingsPath() string {
	return filepath.Join(xdg.ConfigHome, AppID, ConfigFileName)
}

// LoadSettings reads the YAML file at path on top of the defaults.
// A missing file is not an error. Zero values in the file keep the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	log := slog.With(LogKeyComponent, CompConfig, LogKeyFile, path)

	//nolint:gosec // G304: path comes from the user's own flag or the XDG location.
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug(MsgSettingsNone)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("%s: %w", ErrReadSettings, err)
	}

	var fromFile Settings
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return s, fmt.Errorf("%s: %w", ErrParseSettings, err)
	}
	s.merge(fromFile)

	log.Debug(MsgSettingsRead,
		LogKeyPageSize, s.PageSize,
		LogKeyLang, s.Language,
	)
	return s, s.Validate()
}

// merge copies every non-zero field of other into s.
func (s *Settings) merge(other Settings) {
	if other.File != "" {
		s.File = other.File
	}
	if other.PageSize != 0 {
		s.PageSize = other.PageSize
	}
	if other.Language != "" {
		s.Language = other.Language
	}
}

// Validate reports the first unusable value.
func (s Settings) Validate() error {
	if s.File == "" {
		return errors.New(ErrBookPathEmpty)
	}
	if s.PageSize < 1 {
		return fmt.Errorf("%s: %d", ErrPageSize, s.PageSize)
	}
	if !slices.Contains(SupportedLanguages, s.Language) {
		return fmt.Errorf("%s: %q", ErrLanguage, s.Language)
	}
	return nil
}
