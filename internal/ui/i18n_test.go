package ui

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/config"
)

// newLocaleApp returns an app reading its message files from files.
func newLocaleApp(t *testing.T, files fstest.MapFS, langs ...string) *GoClockApp {
	t.Helper()
	app := NewGoClockApp(test.NewApp(), context.Background())
	app.Clock = &MockClock{CurrentTime: time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)}
	app.Dispatch = func(fn func()) { fn() }
	app.Locales = files
	app.SupportedLanguages = langs
	return app
}

func message(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(body)}
}

func TestSetupI18n_OffersOnlyEmbeddedSupportedLanguages(t *testing.T) {
	app := newLocaleApp(t, fstest.MapFS{
		"locales/active.en.json": message(`{"win_title":"Clock"}`),
		"locales/active.de.json": message(`{"win_title":"Uhr"}`),
	}, "en", "fr")

	require.NoError(t, app.Setup())

	assert.Equal(t, []string{"en"}, app.SupportedLanguages, "fr has no file and de is not supported")
	require.Len(t, app.LanguageMenu.Items, 1)
	assert.Equal(t, "en", app.LanguageMenu.Items[0].Label)
	assert.Equal(t, "Clock", app.Window.Title())
}

func TestSetupI18n_MalformedLocaleFails(t *testing.T) {
	app := newLocaleApp(t, fstest.MapFS{
		"locales/active.en.json": message(`{"win_title":`),
	}, "en")

	err := app.Setup()
	require.Error(t, err)
	assert.ErrorContains(t, err, config.ErrLocaleLoad)
	assert.Nil(t, app.Window, "No window is built when locales fail")
}

func TestSetupI18n_RequiresDefaultLocale(t *testing.T) {
	app := newLocaleApp(t, fstest.MapFS{
		"locales/active.fr.json": message(`{"win_title":"Horloge"}`),
	}, "en", "fr")

	err := app.SetupI18n()
	require.Error(t, err)
	assert.ErrorContains(t, err, config.ErrLocaleDefault)
}

func TestUpdateLocalizer_UnsupportedPreferenceFallsBack(t *testing.T) {
	app, _ := setupTestApp(t)

	app.Preferences.SetString(config.PrefLanguage, "de")
	app.UpdateLocalizer()

	assert.Equal(t, "Clock", app.GetMsg(config.TKeyWinTitle))
}
