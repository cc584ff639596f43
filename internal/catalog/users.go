package catalog

import (
	"strings"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

type UserInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type NotificationInput struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Link    string `json:"link"`
}

func userConfig(fold bool) listctl.Config[models.User] {
	return listctl.Config[models.User]{
		Name:       "users",
		ID:         func(u models.User) int64 { return u.ID },
		SetID:      func(u models.User, id int64) models.User { u.ID = id; return u },
		Fields:     func(u models.User) []string { return []string{u.Username, u.Email} },
		FallbackID: 901,
		Collapse:   collapseAll,
		Fold:       fold,
	}
}

// New users start with no follow relationships; edits keep the existing ones.
func userSchema() form.Schema[models.User, UserInput] {
	return form.Schema[models.User, UserInput]{
		Validate: func(c *form.Checker, in UserInput) {
			c.Email("email", in.Email, 100)
			c.Text("username", in.Username, 50)
		},
		Build: func(in UserInput, original *models.User) (models.User, error) {
			u := models.User{
				Email:        strings.TrimSpace(in.Email),
				Username:     strings.TrimSpace(in.Username),
				FollowingIDs: []int64{},
				FollowerIDs:  []int64{},
			}
			if original != nil {
				u.ID = original.ID
				u.FollowingIDs = original.FollowingIDs
				u.FollowerIDs = original.FollowerIDs
			}
			return u, nil
		},
	}
}

func notificationConfig(fold bool) listctl.Config[models.Notification] {
	return listctl.Config[models.Notification]{
		Name:  "notifications",
		ID:    func(n models.Notification) int64 { return n.ID },
		SetID: func(n models.Notification, id int64) models.Notification { n.ID = id; return n },
		Fields: func(n models.Notification) []string {
			return []string{n.Message, string(n.Type)}
		},
		FallbackID: 1,
		Fold:       fold,
	}
}

func (c *Catalog) notificationSchema() form.Schema[models.Notification, NotificationInput] {
	return form.Schema[models.Notification, NotificationInput]{
		Validate: func(ch *form.Checker, in NotificationInput) {
			ch.Text("message", in.Message, 280)
			ch.OneOf("type", in.Type,
				string(models.NotifyManuscript), string(models.NotifySystem),
				string(models.NotifyReview), string(models.NotifyAlert))
			ch.Text("link", in.Link, 255)
		},
		Build: func(in NotificationInput, original *models.Notification) (models.Notification, error) {
			t := models.NotificationType(in.Type)
			n := models.Notification{
				Message:   strings.TrimSpace(in.Message),
				Type:      t,
				Icon:      t.Icon(),
				Timestamp: c.now().UTC(),
				Link:      strings.TrimSpace(in.Link),
			}
			if original != nil {
				n.ID = original.ID
				n.Timestamp = original.Timestamp
				n.Read = original.Read
			}
			return n, nil
		},
	}
}

// ToggleRead flips the read flag of one notification.
func (c *Catalog) ToggleRead(id int64) (models.Notification, error) {
	n, ok := c.Notifications.Get(id)
	if !ok {
		return models.Notification{}, listctl.ErrNotFound
	}
	n.Read = !n.Read
	return c.Notifications.Update(n)
}

// OpenNotification marks an unread notification read and returns it; the
// caller navigates to its Link.
func (c *Catalog) OpenNotification(id int64) (models.Notification, error) {
	n, ok := c.Notifications.Get(id)
	if !ok {
		return models.Notification{}, listctl.ErrNotFound
	}
	if n.Read {
		return n, nil
	}
	n.Read = true
	return c.Notifications.Update(n)
}

// MarkAllRead returns how many notifications changed.
func (c *Catalog) MarkAllRead() int {
	return c.Notifications.Map(func(n models.Notification) (models.Notification, bool) {
		if n.Read {
			return n, false
		}
		n.Read = true
		return n, true
	})
}

func (c *Catalog) UnreadCount() int {
	n := 0
	for _, it := range c.Notifications.Items() {
		if !it.Read {
			n++
		}
	}
	return n
}
