package models

import "time"

// AuthUser is the authority's account record for a signed-in identity.
type AuthUser struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	EmailConfirmedAt *time.Time        `json:"email_confirmed_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UserMetadata     map[string]string `json:"user_metadata,omitempty"`
}

// AuthSession is a remote-issued proof of authentication. Expiry and refresh
// are owned by the authority.
type AuthSession struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         AuthUser  `json:"user"`
}

// Expired reports whether the access token is past its expiry, with leeway
// so a token is refreshed slightly before it stops being accepted.
func (s *AuthSession) Expired(now time.Time, leeway time.Duration) bool {
	return !s.ExpiresAt.After(now.Add(leeway))
}

// AuthChangeEvent names a session transition reported by the remote client.
type AuthChangeEvent string

const (
	AuthInitialSession AuthChangeEvent = "INITIAL_SESSION"
	AuthSignedIn       AuthChangeEvent = "SIGNED_IN"
	AuthSignedOut      AuthChangeEvent = "SIGNED_OUT"
	AuthTokenRefreshed AuthChangeEvent = "TOKEN_REFRESHED"
	AuthUserUpdated    AuthChangeEvent = "USER_UPDATED"
)

// Profile is the authority's public profile row, keyed by the auth user id.
type Profile struct {
	ID                      string                   `json:"id"`
	Username                string                   `json:"username"`
	FullName                *string                  `json:"full_name,omitempty"`
	AvatarURL               *string                  `json:"avatar_url,omitempty"`
	Bio                     *string                  `json:"bio,omitempty"`
	Phone                   *string                  `json:"phone,omitempty"`
	NotificationPreferences *NotificationPreferences `json:"notification_preferences,omitempty"`
	CreatedAt               time.Time                `json:"created_at"`
	UpdatedAt               *time.Time               `json:"updated_at,omitempty"`
}
