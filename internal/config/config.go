package config

import (
	"image/color"
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Clock"
	AppID       = "com.github.tartampluch.go-clock"
	LogFileName = "go-clock.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion        = "version"
	FlagDebug          = "debug"
	FlagTraceWakes     = "trace-wakes"
	FlagDescVersion    = "Show application version and exit"
	FlagDescDebug      = "Enable debug logging (window, menu and locale events); sampler wake-ups stay quiet"
	FlagDescTraceWakes = "Also log every sampler wake-up and published time (implies -debug)"
	MsgVersionOutput   = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Window & Preferences
// -----------------------------------------------------------------------------

const (
	// Initial window size. The face itself negotiates its own square.
	WindowWidth  = 200
	WindowHeight = 200

	PrefLanguage    = "language"
	PrefShowSeconds = "show_second_hand"
	PrefLastRun     = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyMenuView       = "menu_view"
	TKeyMenuSecondHand = "menu_second_hand"
	TKeyMenuLanguage   = "menu_language"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultLanguage   = "en"
	DefaultShowSecond = false
	FallbackWinTitle  = "Clock"
)

// -----------------------------------------------------------------------------
// Time Sampling
// -----------------------------------------------------------------------------

const (
	// SampleResolution is the granularity of published time values.
	SampleResolution = time.Second

	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400
	HoursPerDay      = 24
	MinutesPerHour   = 60
	NanosPerSecond   = int(time.Second)
)

// -----------------------------------------------------------------------------
// Clock Face Geometry
// -----------------------------------------------------------------------------

const (
	// Layout negotiation: square face, never larger than FaceMaxExtent units.
	FaceAspectRatio = 1.0
	FaceMaxExtent   = 400.0
	FaceMinExtent   = 64.0

	TickCount     = 60
	TickLongEvery = 5 // Every 5th mark sits on an hour position.

	// RimInset is subtracted from the radius to find the inner edge of the
	// ticks and the tip of the hands.
	RimInset = 20.0

	// Long tick: x from LongTickLeft to LongTickRight, y from -r to RimInset-r.
	LongTickLeft  = -3.0
	LongTickRight = 2.0

	// Short tick: x from ShortTickLeft to ShortTickRight, y from
	// ShortTickOuter-r to RimInset-r.
	ShortTickLeft  = -1.0
	ShortTickRight = 1.0
	ShortTickOuter = 17.0

	HourHandHalfWidth   = 6.0
	MinuteHandLeft      = -3.0
	MinuteHandRight     = 2.0
	SecondHandHalfWidth = 1.0
)

// Element colors. Fixed, not themeable.
var (
	ColorTick       = color.NRGBA{R: 0xc0, G: 0x00, B: 0x40, A: 0xff}
	ColorHand       = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	ColorSecondHand = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrClockArithmetic = "clock arithmetic error"
	ErrHourRange       = "hour out of range"
	ErrMinuteRange     = "minute out of range"
	ErrSecondRange     = "second out of range"
	ErrNanosRange      = "nanosecond out of range"
	ErrLaunch          = "failed to launch window"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrLocaleDefault   = "no locale for the default language"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgSamplerStart   = "Time sampler armed"
	MsgSamplerStop    = "Time sampler stopped"
	MsgWakeStale      = "Ignoring stale wake token"
	MsgWakeScheduled  = "Next wake scheduled"
	MsgTimePublished  = "Time value published"
	MsgSamplerFatal   = "Clock arithmetic failed, aborting"
	MsgWindowClosed   = "Clock window closed"
	MsgSecondHand     = "Second hand toggled"
	MsgLanguageChange = "UI language changed"
	MsgLocaleSkip     = "Skipping locale of unsupported language"
	MsgLocaleMissing  = "Supported language has no embedded locale"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyToken     = "token"
	LogKeyPending   = "pending"
	LogKeyDelay     = "delay"
	LogKeyTime      = "shown_time"
	LogKeyEnabled   = "enabled"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
	LogKeySampler = "sampler"
	LogKeyRes     = "resolution"
	LogKeyTrace   = "trace_wakes"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompSampler = "sampler"
	CompMain    = "main"
	CompI18n    = "i18n"
)
