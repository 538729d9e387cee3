// Package entities contains core business entities.
package entities

import "time"

// Theme enumerates dashboard color schemes.
type Theme string

const (
	ThemeProfessionalBlue Theme = "Professional Blue"
	ThemeDark             Theme = "Dark Mode"
	ThemeLight            Theme = "Light Mode"
)

// SessionTimeout is an idle period after which a session is dropped.
type SessionTimeout string

const (
	Timeout15Minutes SessionTimeout = "15 minutes"
	Timeout30Minutes SessionTimeout = "30 minutes"
	Timeout1Hour     SessionTimeout = "1 hour"
	Timeout2Hours    SessionTimeout = "2 hours"
)

// Duration converts the timeout label; unknown labels yield zero.
func (t SessionTimeout) Duration() time.Duration {
	switch t {
	case Timeout15Minutes:
		return 15 * time.Minute
	case Timeout30Minutes:
		return 30 * time.Minute
	case Timeout1Hour:
		return time.Hour
	case Timeout2Hours:
		return 2 * time.Hour
	}
	return 0
}

// DataRetention enumerates how long data should be kept.
type DataRetention string

const (
	Retention30Days  DataRetention = "30 days"
	Retention90Days  DataRetention = "90 days"
	Retention1Year   DataRetention = "1 year"
	RetentionForever DataRetention = "Forever"
)

// Settings holds per-session preferences.
type Settings struct {
	Theme              Theme
	EmailNotifications bool
	PushNotifications  bool
	TaskReminders      bool
	TwoFactorAuth      bool
	SessionTimeout     SessionTimeout
	AutoBackup         bool
	DataRetention      DataRetention
}

// DefaultSettings returns the preferences of a fresh session.
func DefaultSettings() Settings {
	return Settings{
		Theme:              ThemeProfessionalBlue,
		EmailNotifications: true,
		PushNotifications:  true,
		TaskReminders:      true,
		TwoFactorAuth:      false,
		SessionTimeout:     Timeout15Minutes,
		AutoBackup:         true,
		DataRetention:      Retention30Days,
	}
}

// Validate checks enum fields.
func (s Settings) Validate() error {
	c := newFieldChecker("settings")
	switch s.Theme {
	case ThemeProfessionalBlue, ThemeDark, ThemeLight:
	default:
		c.check(false, "theme", "is not a known theme")
	}
	c.check(s.SessionTimeout.Duration() > 0, "session_timeout", "is not a known timeout")
	switch s.DataRetention {
	case Retention30Days, Retention90Days, Retention1Year, RetentionForever:
	default:
		c.check(false, "data_retention", "is not a known retention period")
	}
	return c.err()
}
