package models

import "time"

// NotificationPreferences controls which notifications a user receives.
type NotificationPreferences struct {
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
	BidAlerts          bool `json:"bid_alerts"`
	AuctionUpdates     bool `json:"auction_updates"`
	MarketingEmails    bool `json:"marketing_emails"`
}

// DefaultNotificationPreferences is applied when a profile has no stored
// preferences: everything on except marketing.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		EmailNotifications: true,
		PushNotifications:  true,
		BidAlerts:          true,
		AuctionUpdates:     true,
		MarketingEmails:    false,
	}
}

// User is the signed-in user as seen by the client. It is built only by
// merging a remote auth user with its profile record.
type User struct {
	ID                      string                  `json:"id"`
	Email                   string                  `json:"email"`
	Username                string                  `json:"username"`
	FullName                *string                 `json:"full_name,omitempty"`
	AvatarURL               *string                 `json:"avatar_url,omitempty"`
	Bio                     *string                 `json:"bio,omitempty"`
	Phone                   *string                 `json:"phone,omitempty"`
	CreatedAt               time.Time               `json:"created_at"`
	UpdatedAt               time.Time               `json:"updated_at"`
	IsVerified              bool                    `json:"is_verified"`
	NotificationPreferences NotificationPreferences `json:"notification_preferences"`
}

// Clone returns a deep copy so callers can't mutate store-owned state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.FullName = cloneString(u.FullName)
	c.AvatarURL = cloneString(u.AvatarURL)
	c.Bio = cloneString(u.Bio)
	c.Phone = cloneString(u.Phone)
	return &c
}

// ProfileUpdate is a partial profile change. Nil fields are left untouched;
// non-nil fields replace the stored value.
type ProfileUpdate struct {
	Username                *string                  `json:"username,omitempty"`
	FullName                *string                  `json:"full_name,omitempty"`
	AvatarURL               *string                  `json:"avatar_url,omitempty"`
	Bio                     *string                  `json:"bio,omitempty"`
	Phone                   *string                  `json:"phone,omitempty"`
	NotificationPreferences *NotificationPreferences `json:"notification_preferences,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Username == nil && p.FullName == nil && p.AvatarURL == nil &&
		p.Bio == nil && p.Phone == nil && p.NotificationPreferences == nil
}

// ApplyTo returns a copy of u with the provided fields replaced.
func (p ProfileUpdate) ApplyTo(u *User) *User {
	out := u.Clone()
	if out == nil {
		return nil
	}
	if p.Username != nil {
		out.Username = *p.Username
	}
	if p.FullName != nil {
		out.FullName = cloneString(p.FullName)
	}
	if p.AvatarURL != nil {
		out.AvatarURL = cloneString(p.AvatarURL)
	}
	if p.Bio != nil {
		out.Bio = cloneString(p.Bio)
	}
	if p.Phone != nil {
		out.Phone = cloneString(p.Phone)
	}
	if p.NotificationPreferences != nil {
		out.NotificationPreferences = *p.NotificationPreferences
	}
	return out
}

// String returns a pointer to s; handy for building a ProfileUpdate.
func String(s string) *string {
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
