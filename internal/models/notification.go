package models

import "time"

type NotificationType string

const (
	NotifyManuscript NotificationType = "manuscript"
	NotifySystem     NotificationType = "system"
	NotifyReview     NotificationType = "review"
	NotifyAlert      NotificationType = "alert"
)

// Icon is the material icon name shown next to a notification.
func (t NotificationType) Icon() string {
	switch t {
	case NotifyManuscript:
		return "book"
	case NotifyReview:
		return "rate_review"
	case NotifySystem:
		return "settings_suggest"
	case NotifyAlert:
		return "error"
	default:
		return "info"
	}
}

type Notification struct {
	ID        int64            `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Icon      string           `json:"icon"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"is_read"`
	Link      string           `json:"link"`
}
