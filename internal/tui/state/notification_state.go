package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// Notification is a single message shown in the board header.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the notifications raised since the last keypress.
type NotificationState struct {
	notifications []Notification
}

func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add adds a new notification with the specified level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

func (s *NotificationState) All() []Notification {
	return s.notifications
}

func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// Latest returns the most recent notification. Errors outrank anything
// raised after them so a failed move is not hidden by a later info message.
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].Level == LevelError {
			return s.notifications[i], true
		}
	}
	return s.notifications[len(s.notifications)-1], true
}
