package cli

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-addressbook/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Messages renders the user-facing replies of the REPL in one language.
type Messages struct {
	localizer *i18n.Localizer
}

// NewMessages loads every embedded locale and selects lang, falling back to English
// for keys the chosen locale lacks.
func NewMessages(lang string) (*Messages, error) {
	bundle, err := loadBundle()
	if err != nil {
		return nil, err
	}
	return &Messages{localizer: i18n.NewLocalizer(bundle, lang, config.DefaultLanguage)}, nil
}

func loadBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}
	return bundle, nil
}

// Get translates key with optional template data. A missing key renders as the key itself.
func (m *Messages) Get(key string, data map[string]any) string {
	return m.localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

// Plural translates key choosing the plural form for count. The count is
// available to the template as .Count.
func (m *Messages) Plural(key string, count int, data map[string]any) string {
	if data == nil {
		data = make(map[string]any, 1)
	}
	data["Count"] = count
	return m.localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data, PluralCount: count})
}

func (m *Messages) localize(lc *i18n.LocalizeConfig) string {
	msg, err := m.localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
		return lc.MessageID
	}
	return msg
}
