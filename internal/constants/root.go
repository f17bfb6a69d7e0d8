package constants

// NoticeKind identifies a once-per-day session notice
type NoticeKind string

const (
	AppName            = "fozzle"
	Version            = "v0.3.1"
	DefaultConfigPath  = "~/.config/fozzle/fozzle.db"
	DefaultKeyringUser = "database-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ScoreThreshold is the Fozzle score (percent) whose upward crossing fires the celebration signal
	ScoreThreshold = 80.0

	// Notice kinds for the daily session gate
	NoticeWelcomeBack  NoticeKind = "welcome-back"
	NoticeMissedReturn NoticeKind = "missed-return"

	// Default settings
	DefaultTimezone             = "Local"
	DefaultDailyGoal            = 10
	DefaultNotificationsEnabled = true

	// GateFileName is the day-gate state file kept next to the config database
	GateFileName = "notice-gate.json"
)
