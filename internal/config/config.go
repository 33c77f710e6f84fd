package config

import (
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

// UserAgent identifies the HTTP client used for remote contact import.
var UserAgent = "Age-Calculator/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Age Calculator"
	AppID          = "com.github.mohammadusama1497-dot.age-calculator"
	KeyringService = "com.github.mohammadusama1497-dot.age-calculator"
	LogFileName    = "app.log"
	IconFile       = "Icon.png"
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
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 420
	MainWindowHeight    = 360
	SettingsWindowWidth = 560

	// Preference Keys
	PrefLanguage      = "language"
	PrefResultDelayMS = "result_delay_ms"
	PrefSourceMode    = "source_mode"
	PrefLocalPath     = "local_path"
	PrefCardDAVURL    = "carddav_url"
	PrefUsername      = "username"
	PrefLastRun       = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle     = "win_title"
	TKeyWinSettings  = "win_settings_title"
	TKeyLblName      = "lbl_name"
	TKeyLblDOB       = "lbl_dob"
	TKeyHelpDOB      = "help_dob"
	TKeyBtnCalculate = "btn_calculate"
	TKeyBtnReset     = "btn_reset"
	TKeyBtnImport    = "btn_import"
	TKeyBtnExport    = "btn_export"
	TKeyBtnSettings  = "btn_settings"
	TKeyLblWorking   = "lbl_calculating"
	TKeyResultAge    = "result_age" // Requires Name, Years, Months, Days

	// Validation Errors (rendered next to the offending field)
	TKeyErrNameEmpty  = "err_name_empty"
	TKeyErrNameShort  = "err_name_short"
	TKeyErrDateMiss   = "err_date_missing"
	TKeyErrDateFuture = "err_date_future"
	TKeyErrDateOld    = "err_date_too_old"
	TKeyErrDateFormat = "err_date_format"

	// Settings Window
	TKeyLblLanguage = "lbl_language"
	TKeyHelpLang    = "help_language"
	TKeyLblDelay    = "lbl_result_delay"
	TKeyHelpDelay   = "help_result_delay"
	TKeyLblMillis   = "lbl_millis_suffix"
	TKeyLblGeneral  = "lbl_general"
	TKeyLblSource   = "lbl_source"
	TKeyModeCardDAV = "mode_carddav"
	TKeyModeLocal   = "mode_local"
	TKeyLblURL      = "lbl_url"
	TKeyHelpURL     = "help_carddav_url"
	TKeyLblUser     = "lbl_user"
	TKeyLblPass     = "lbl_pass"
	TKeyBtnBrowse   = "btn_browse"
	TKeyBtnSave     = "btn_save"
	TKeyBtnCancel   = "btn_cancel"
	TKeyLblFooter   = "lbl_footer"

	// Notifications & Export
	TKeyNotifImportOK  = "notif_import_ok"
	TKeyNotifImportErr = "notif_import_err"
	TKeyNotifExportOK  = "notif_export_ok"
	TKeyNotifExportErr = "notif_export_err"
	TKeyEvtSummaryAge  = "event_summary_age" // Requires Name, Age
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb   = "web"
	SourceModeLocal = "local"

	DefaultLanguage      = "en"
	DefaultResultDelayMS = 400
	DisabledDelay        = 0

	// MinNameRunes is the minimum trimmed name length (counted in runes).
	MinNameRunes = 2

	// MaxAgeYears is the oldest accepted date of birth, in calendar years
	// before the reference date. Exactly MaxAgeYears is still accepted.
	MaxAgeYears = 120

	UIDSalt = "age-calculator-v1-" // Salt for deterministic UID generation
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Age Calculator//Export//EN"
	ICalCalName = "Birthday"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "agecalculator"

	// iCal/vCard Fields
	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts accepted for the date-of-birth field and vCard BDAY values
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// DateFormatDisplay is the layout used when echoing a date back to the UI.
	DateFormatDisplay = "2006-01-02"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtICS   = ".ics"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout = 30 * time.Second

	// MaxHTTPResponseSize bounds a remote .vcf download. Address book exports
	// with embedded photos can be large, so a single-digit-MB cap would be
	// too tight; 32MB is plenty without risking RAM.
	MaxHTTPResponseSize = 32 * 1024 * 1024

	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// -----------------------------------------------------------------------------
// HTTP Headers
// -----------------------------------------------------------------------------

const (
	HeaderUserAgent = "User-Agent"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty = "configuration error: local path is empty"
	ErrWebURLEmpty    = "configuration error: web URL is empty"
	ErrFetcherMissing = "internal error: network fetcher is not initialized"
	ErrModeUnsupport  = "configuration error: unsupported source mode"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrDateParse      = "unable to parse date"
	ErrVCardDecode    = "failed to decode vCard stream"
	ErrNoContact      = "no contact found in stream"
	ErrNoBirthDate    = "contact has no usable birth date"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackName       = "Unknown"
	FallbackResult     = "Hello %s, your age is: %d Years %d Months %d Days"
	FallbackSummaryAge = "Birthday: %s (%d)"

	TitleImportError = "Import Error"
	TitleExportError = "Export Error"

	MsgLogWarning = "Warning: %s at %s: %v\n"

	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgCalcDone       = "Age calculated"
	MsgCalcRejected   = "Validation failed"
	MsgFormReset      = "Form reset"
	MsgImportStart    = "Contact import started"
	MsgImportDone     = "Contact imported"
	MsgImportFailed   = "Contact import failed"
	MsgExportDone     = "Birthday event exported"
	MsgExportFailed   = "Birthday event export failed"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgPassFail       = "Password retrieval failed (might be empty)"
	MsgOpenSettings   = "Opening settings window"
	MsgSavePrefs      = "Saving preferences"
	MsgKeyringFail    = "Failed to save credentials to keyring"
	MsgDelayScheduled = "Result display delayed"

	PlaceholderURL  = "https://..."
	PlaceholderDate = "YYYY-MM-DD"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyMode      = "mode"
	LogKeyUser      = "user"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyField     = "field"
	LogKeyReason    = "reason"
	LogKeyYears     = "years"
	LogKeyMonths    = "months"
	LogKeyDays      = "days"
	LogKeyResult    = "result"
	LogKeyDelayMS   = "delay_ms"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompUISet   = "ui_settings"
	CompCore    = "agecalc"
	CompFetcher = "fetcher"
	CompMain    = "main"
	CompI18n    = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
