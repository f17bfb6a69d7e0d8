package models

// Settings represents application-wide settings
type Settings struct {
	Timezone             string `json:"timezone"`              // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	DailyGoal            int    `json:"daily_goal"`            // target number of completions per day, shown as progress
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether session notices are shown
}
