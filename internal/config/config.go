package config

import "io/fs"

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
	AppName         = "Go Address Book"
	AppID           = "addressbook"
	BinaryName      = "addressbook"
	LogFileName     = "app.log"
	ConfigFileName  = "config.yaml"
	DefaultBookFile = "AddressBook.vcf"
	TempFilePattern = ".addressbook-*.tmp"
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
	// Used for the address book and logs, both contain personal data.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagFile     = "file"
	FlagFileS    = "f"
	FlagPageSize = "page-size"
	FlagLang     = "lang"
	FlagConfig   = "config"
	FlagDebug    = "debug"
	FlagOut      = "out"
	FlagOutS     = "o"
	FlagRemind   = "remind"

	FlagDescFile     = "Path of the address book file"
	FlagDescPageSize = "Number of records per page for 'show all'"
	FlagDescLang     = "Language of the responses (en, uk)"
	FlagDescConfig   = "Path of the YAML settings file"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescOut      = "Destination of the iCalendar file"
	FlagDescRemind   = "ISO8601 alarm trigger added to every event (e.g. -P1D)"

	CmdShortRoot     = "Command-line address book"
	CmdShortVersion  = "Print the version and exit"
	CmdShortCalendar = "Export every birthday as an iCalendar file"
	CmdUseCalendar   = "calendar"
	CmdUseVersion    = "version"

	MsgVersionOutput   = "%s version %s (commit %s, built %s, %s/%s)\n"
	MsgCalendarWritten = "%d events written to %s\n"
	DefaultCalendar    = "birthdays.ics"
)

// -----------------------------------------------------------------------------
// REPL
// -----------------------------------------------------------------------------

const (
	Prompt        = ">>> "
	PageSeparator = "***************"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPageSize = 20
	DefaultLanguage = "en"

	// BirthdayInputLayout is the DD-MM-YYYY form typed by users.
	BirthdayInputLayout = "02-01-2006"
	// BirthdayDisplayLayout is used when a record is rendered.
	BirthdayDisplayLayout = "2006/01/02"
	// BirthdayVCardLayout is the vCard 4.0 basic date form.
	BirthdayVCardLayout = "20060102"

	ListSeparator = "; "
	FieldJoiner   = " "

	PhonePattern    = `\+?\d+\(?\d+\)?\d+-?\d+-?\d+`
	EmailPattern    = `\w+@\w+\.\w{2,}`
	BirthdayPattern = `\d{2}-\d{2}-\d{4}`

	HoursPerDay = 24

	// MaxLineSize bounds one line of REPL input.
	MaxLineSize = 1 << 20
)

// SupportedLanguages defines the list of available response languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Address Book//Calendar//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardVersion = "4.0"
	UIDPrefix    = "urn:uuid:"

	SummaryFormat = "Birthday: %s"

	// StubVCalendar is the minimal valid iCalendar object written when no birthdays are known.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// UIDNamespace seeds the deterministic name-based UUIDs written to vCard and iCal files.
const UIDNamespace = "6f1c2a4e-8b5d-4f0e-9c3a-2d7e1b9a5f60"

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrAppFailed       = "application failed unexpectedly"
	ErrLogFile         = "failed to open log file"
	ErrStateDir        = "could not create app state dir"
	ErrReadSettings    = "failed to read settings file"
	ErrParseSettings   = "failed to parse settings file"
	ErrPageSize        = "page size must be at least 1"
	ErrLanguage        = "unsupported language"
	ErrBookPathEmpty   = "address book path is empty"
	ErrOpenBook        = "failed to open address book"
	ErrEncodeBook      = "failed to encode address book"
	ErrWriteBook       = "failed to write address book"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrWriteCalendar   = "failed to write calendar file"
	ErrReadInput       = "failed to read input"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrSaveOnExit      = "failed to save address book on exit"
	ErrLoadBook        = "failed to load address book"
	ErrGetFlag         = "failed to read flag"
	ErrCreateCalendar  = "failed to create calendar file"
	ErrResolveSettings = "failed to resolve settings"
	ErrReadBook        = "failed to read address book"
	ErrNoCards         = "no vCard found"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgBookMissing   = "Address book file not found, starting empty"
	MsgBookForeign   = "Address book file has an incompatible structure, starting empty"
	MsgBookLoaded    = "Address book loaded"
	MsgBookSaved     = "Address book saved"
	MsgSettingsNone  = "No settings file, using defaults"
	MsgSettingsRead  = "Settings loaded"
	MsgCommand       = "Command dispatched"
	MsgCommandFailed = "Command failed"
	MsgUnknownCmd    = "Unknown command"
	MsgEOF           = "End of input"
	MsgCtxCancel     = "Context cancelled, ending session"
	MsgCalendarDone  = "Calendar export successful"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyHello        = "hello"
	TKeyGoodBye      = "good_bye"
	TKeyDone         = "done"
	TKeyUnknown      = "unknown_command" // Requires Input
	TKeyEmptyName    = "err_empty_name"
	TKeyNotFound     = "err_not_found"     // Requires Name
	TKeyInvalidDate  = "err_invalid_date"  // Requires Value
	TKeyInvalidPhone = "err_invalid_phone" // Requires Value
	TKeyPhoneAdded   = "phone_added"
	TKeyEmailAdded   = "email_added"
	TKeyPhoneDeleted = "phone_deleted"     // Requires Value
	TKeyEmailDeleted = "email_deleted"     // Requires Value
	TKeyNoPhone      = "no_phone"          // Requires Name, Value
	TKeyNoEmail      = "no_email"          // Requires Name, Value
	TKeyNoBirthday   = "no_birthday"       // Requires Name
	TKeyDaysLeft     = "days_to_birthday"  // Requires Days
	TKeyNothingToDo  = "nothing_to_change" // Requires Name
	TKeyNoMatches    = "no_matches"        // Requires Query
	TKeyEmptyBook    = "empty_address_book"
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
	LogKeyCommand   = "command"
	LogKeyCount     = "count"
	LogKeyPageSize  = "page_size"
	LogKeyDuration  = "duration_ms"
	LogKeyEvents    = "events"

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
	CompMain     = "main"
	CompCLI      = "cli"
	CompStorage  = "storage"
	CompCalendar = "calendar"
	CompConfig   = "config"
	CompI18n     = "i18n"
)
