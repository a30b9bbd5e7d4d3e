package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-clock/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// localeFile names the message file for lang inside the locales tree.
func localeFile(lang string) string {
	return path.Join("locales", "active."+lang+".json")
}

// SetupI18n loads the locale of every supported language that ships a
// message file and narrows SupportedLanguages to those, so the Language
// menu never offers a locale it cannot show. A file that fails to parse, or
// a missing default locale, is an error.
func (app *GoClockApp) SetupI18n() error {
	embedded, err := fs.Glob(app.Locales, localeFile("*"))
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	var loaded []string
	for _, lang := range app.SupportedLanguages {
		file := localeFile(lang)
		if !slices.Contains(embedded, file) {
			slog.Warn(config.MsgLocaleMissing,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyLang, lang,
			)
			continue
		}
		if _, err := bundle.LoadMessageFileFS(app.Locales, file); err != nil {
			return fmt.Errorf("%s: %s: %w", config.ErrLocaleLoad, file, err)
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, lang,
			config.LogKeyFile, file,
		)
		loaded = append(loaded, lang)
	}

	for _, file := range embedded {
		if !slices.ContainsFunc(loaded, func(lang string) bool { return localeFile(lang) == file }) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, file,
			)
		}
	}

	if !slices.Contains(loaded, config.DefaultLanguage) {
		return fmt.Errorf("%s: %s", config.ErrLocaleDefault, config.DefaultLanguage)
	}

	app.SupportedLanguages = loaded
	app.I18nBundle = bundle
	app.UpdateLocalizer()
	return nil
}

// UpdateLocalizer points the translator at the preferred language. A stored
// preference for a language that is no longer offered falls back to the
// default.
func (app *GoClockApp) UpdateLocalizer() {
	lang := app.currentLanguage()
	if !slices.Contains(app.SupportedLanguages, lang) {
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg translates key, or returns key itself when no translation exists.
func (app *GoClockApp) GetMsg(key string) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
