package models

import "time"

// Severity classifies a user-visible notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// OrDefault returns the severity, falling back to info when unset or
// unrecognized.
func (s Severity) OrDefault() Severity {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return s
	default:
		return SeverityInfo
	}
}

// Notification is one transient toast shown to the user. Failures surface
// as notifications; they never interrupt the editing session.
type Notification struct {
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}
