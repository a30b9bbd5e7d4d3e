package ui

import (
	"context"
	"io/fs"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
)

// GoClockApp encapsulates the UI state, preferences, and the time sampler.
type GoClockApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock engine.Clock // Injected clock for testability

	// Dispatch marshals timer callbacks onto the UI goroutine.
	Dispatch func(fn func())

	Sampler *engine.TimeSampler
	Face    *ClockFace

	Menu           *fyne.MainMenu
	ViewMenu       *fyne.Menu
	LanguageMenu   *fyne.Menu
	SecondHandItem *fyne.MenuItem

	// Locales holds the locales/active.<lang>.json message files.
	Locales            fs.FS
	SupportedLanguages []string
}

// NewGoClockApp constructs the application and wires dependencies.
func NewGoClockApp(a fyne.App, ctx context.Context) *GoClockApp {
	return &GoClockApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              engine.RealClock{}, // Default to real clock in production
		Dispatch:           fyne.Do,
		Locales:            localeFS,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Setup loads translations and builds the clock window without showing it.
func (app *GoClockApp) Setup() error {
	if err := app.SetupI18n(); err != nil {
		return err
	}
	app.buildWindow()
	return nil
}

// Run shows the window, arms the sampler and enters the UI loop.
// Setup must have been called. It blocks until the last window closes.
func (app *GoClockApp) Run() {
	done := make(chan struct{})
	defer close(done)
	go app.watchContext(done, func() { fyne.Do(app.App.Quit) })

	app.Window.Show()
	app.Sampler.Start()
	app.App.Run()
}

// watchContext calls quit once the context is cancelled, unless done is
// closed first because the UI loop already ended.
func (app *GoClockApp) watchContext(done <-chan struct{}, quit func()) {
	select {
	case <-app.Ctx.Done():
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
		quit()
	case <-done:
	}
}

// buildWindow wires sampler -> face and lays out the window.
func (app *GoClockApp) buildWindow() {
	app.Sampler = engine.NewTimeSampler(app.Clock, app.Dispatch)
	app.Face = NewClockFace(app.Sampler.Current())
	app.Face.SetShowSecondHand(app.Preferences.BoolWithFallback(config.PrefShowSeconds, config.DefaultShowSecond))
	app.Sampler.OnChange = func(v engine.TimeValue) {
		app.Face.SetTime(v)
	}

	w := app.App.NewWindow(app.windowTitle())
	w.SetContent(app.Face)
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	w.SetOnClosed(func() {
		slog.Info(config.MsgWindowClosed, config.LogKeyComponent, config.CompUI)
		app.Sampler.Stop()
	})
	app.Window = w

	app.setupMenu()
	w.SetMainMenu(app.Menu)
}

// setupMenu constructs the window's main menu.
func (app *GoClockApp) setupMenu() {
	app.SecondHandItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSecondHand), func() {
		app.ToggleSecondHand()
	})
	app.SecondHandItem.Checked = app.Face.ShowSecondHand()
	app.ViewMenu = fyne.NewMenu(app.GetMsg(config.TKeyMenuView), app.SecondHandItem)

	current := app.currentLanguage()
	items := make([]*fyne.MenuItem, 0, len(app.SupportedLanguages))
	for _, lang := range app.SupportedLanguages {
		item := fyne.NewMenuItem(lang, func() {
			app.SetLanguage(lang)
		})
		item.Checked = lang == current
		items = append(items, item)
	}
	app.LanguageMenu = fyne.NewMenu(app.GetMsg(config.TKeyMenuLanguage), items...)

	app.Menu = fyne.NewMainMenu(app.ViewMenu, app.LanguageMenu)
}

// ToggleSecondHand flips the optional second hand and remembers the choice.
func (app *GoClockApp) ToggleSecondHand() {
	show := !app.Face.ShowSecondHand()
	app.Preferences.SetBool(config.PrefShowSeconds, show)
	app.Face.SetShowSecondHand(show)

	slog.Info(config.MsgSecondHand,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyEnabled, show)

	if app.SecondHandItem != nil {
		app.SecondHandItem.Checked = show
		app.Menu.Refresh()
	}
}

// SetLanguage switches the UI language and relabels the window.
func (app *GoClockApp) SetLanguage(lang string) {
	app.Preferences.SetString(config.PrefLanguage, lang)
	app.UpdateLocalizer()

	slog.Info(config.MsgLanguageChange,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyLang, lang)

	app.RefreshLabels()
}

// RefreshLabels updates localized labels in the window and its menu.
func (app *GoClockApp) RefreshLabels() {
	if app.Window != nil {
		app.Window.SetTitle(app.windowTitle())
	}
	if app.Menu == nil {
		return
	}
	app.ViewMenu.Label = app.GetMsg(config.TKeyMenuView)
	app.LanguageMenu.Label = app.GetMsg(config.TKeyMenuLanguage)
	app.SecondHandItem.Label = app.GetMsg(config.TKeyMenuSecondHand)

	current := app.currentLanguage()
	for _, item := range app.LanguageMenu.Items {
		item.Checked = item.Label == current
	}
	app.Menu.Refresh()
}

func (app *GoClockApp) windowTitle() string {
	title := app.GetMsg(config.TKeyWinTitle)
	if title == config.TKeyWinTitle {
		return config.FallbackWinTitle
	}
	return title
}

func (app *GoClockApp) currentLanguage() string {
	return app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
}
