// Package models holds the authority's persistent records.
package models

import "time"

type User struct {
	ID                string
	Email             string
	PasswordHash      string
	EmailConfirmedAt  *time.Time
	ConfirmationToken *string
	Metadata          map[string]string
	CreatedAt         time.Time
}

// Profile is the public row for a user, keyed by the user's id.
type Profile struct {
	ID                      string
	Username                string
	FullName                *string
	AvatarURL               *string
	Bio                     *string
	Phone                   *string
	NotificationPreferences *NotificationPreferences
	CreatedAt               time.Time
	UpdatedAt               *time.Time
}

type NotificationPreferences struct {
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
	BidAlerts          bool `json:"bid_alerts"`
	AuctionUpdates     bool `json:"auction_updates"`
	MarketingEmails    bool `json:"marketing_emails"`
}

// ProfileUpdate lists the columns to change; nil fields are left alone.
type ProfileUpdate struct {
	Username                *string
	FullName                *string
	AvatarURL               *string
	Bio                     *string
	Phone                   *string
	NotificationPreferences *NotificationPreferences
}

func (p ProfileUpdate) IsEmpty() bool {
	return p.Username == nil && p.FullName == nil && p.AvatarURL == nil &&
		p.Bio == nil && p.Phone == nil && p.NotificationPreferences == nil
}
