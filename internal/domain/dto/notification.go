package dto

// NotificationKind classifies a workflow outcome for the UI.
type NotificationKind string

const (
	// NotificationSuccess is an affirmative outcome (step completed, pack
	// completed, medication verified).
	NotificationSuccess NotificationKind = "success"
	// NotificationWarning is a non-error business outcome (unmatched barcode,
	// rejected action on a completed pack).
	NotificationWarning NotificationKind = "warning"
	// NotificationError is a genuine failure (persistence fault, state desync).
	NotificationError NotificationKind = "error"
)

// Notification is the sole UI-facing outcome contract of the preparation
// workflow. Every workflow response carries exactly one.
//
// @Description Structured outcome event for the UI
type Notification struct {
	Kind    NotificationKind `json:"kind" example:"success"`
	Title   string           `json:"title" example:"Step completed"`
	Message string           `json:"message" example:"Checklist item has been marked as complete"`
} // @name Notification

// NewNotification builds a notification of the given kind.
func NewNotification(kind NotificationKind, title, message string) Notification {
	return Notification{Kind: kind, Title: title, Message: message}
}
