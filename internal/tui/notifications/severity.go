package notifications

import "github.com/thenoetrevino/hirepaso/internal/tui/state"

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// FromLevel maps a notification level from the board state onto a severity
func FromLevel(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}
