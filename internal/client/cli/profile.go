package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/services"
	"github.com/dmitrijs2005/instabids/internal/client/session"
	"github.com/google/uuid"
)

const avatarBucket = "avatars"

var errUsage = errors.New("invalid arguments, see 'help'")

func displayName(st session.State) string {
	if st.User == nil {
		return ""
	}
	if st.User.Username != "" {
		return st.User.Username
	}
	return st.User.Email
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// Whoami prints the current user.
func (a *App) Whoami(ctx context.Context) error {
	u := a.store.State().User
	if u == nil {
		return session.ErrNotLoggedIn
	}

	p := u.NotificationPreferences
	a.printf("ID:        %s\n", u.ID)
	a.printf("Email:     %s (verified: %t)\n", u.Email, u.IsVerified)
	a.printf("Username:  %s\n", u.Username)
	a.printf("Full name: %s\n", optional(u.FullName))
	a.printf("Bio:       %s\n", optional(u.Bio))
	a.printf("Phone:     %s\n", optional(u.Phone))
	a.printf("Avatar:    %s\n", optional(u.AvatarURL))
	a.printf("Notify:    email=%t push=%t bids=%t auctions=%t marketing=%t\n",
		p.EmailNotifications, p.PushNotifications, p.BidAlerts, p.AuctionUpdates, p.MarketingEmails)
	return nil
}

// parseProfileUpdate turns "field=value" assignments into an update. Notification
// flags are applied on top of current so unspecified flags keep their value.
func parseProfileUpdate(assignments []string, current models.NotificationPreferences) (models.ProfileUpdate, error) {
	var upd models.ProfileUpdate
	prefs := current
	prefsSet := false

	for _, kv := range assignments {
		field, value, ok := strings.Cut(kv, "=")
		if !ok {
			return upd, fmt.Errorf("%w: %q is not field=value", errUsage, kv)
		}
		field = strings.TrimSpace(field)

		switch field {
		case "username":
			upd.Username = models.String(value)
		case "full_name":
			upd.FullName = models.String(value)
		case "bio":
			upd.Bio = models.String(value)
		case "phone":
			upd.Phone = models.String(value)
		case "avatar_url":
			upd.AvatarURL = models.String(value)
		case "email_notifications", "push_notifications", "bid_alerts", "auction_updates", "marketing_emails":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return upd, fmt.Errorf("%w: %s must be true or false", errUsage, field)
			}
			switch field {
			case "email_notifications":
				prefs.EmailNotifications = b
			case "push_notifications":
				prefs.PushNotifications = b
			case "bid_alerts":
				prefs.BidAlerts = b
			case "auction_updates":
				prefs.AuctionUpdates = b
			case "marketing_emails":
				prefs.MarketingEmails = b
			}
			prefsSet = true
		default:
			return upd, fmt.Errorf("%w: unknown field %q", errUsage, field)
		}
	}

	if prefsSet {
		upd.NotificationPreferences = &prefs
	}
	return upd, nil
}

// Update changes profile fields given as field=value arguments. Without
// arguments it prompts for them, and "update bio" prompts for a multi-line bio.
func (a *App) Update(ctx context.Context, args []string) error {
	u := a.store.State().User
	if u == nil {
		return session.ErrNotLoggedIn
	}

	var (
		upd models.ProfileUpdate
		err error
	)
	switch {
	case len(args) == 1 && args[0] == "bio":
		bio, rerr := GetMultiline(a.reader, "Enter bio", a.out)
		if rerr != nil {
			return rerr
		}
		upd.Bio = models.String(bio)
	case len(args) == 0:
		lines, rerr := GetAssignments(a.reader, "Enter profile fields", a.out)
		if rerr != nil {
			return rerr
		}
		upd, err = parseProfileUpdate(lines, u.NotificationPreferences)
	default:
		upd, err = parseProfileUpdate(args, u.NotificationPreferences)
	}
	if err != nil {
		return err
	}

	if err := a.store.UpdateProfile(ctx, upd); err != nil {
		return err
	}
	a.printf("Profile updated.\n")
	return nil
}

// Avatar uploads an image file and points the profile's avatar at it.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	u := a.store.State().User
	if u == nil {
		return session.ErrNotLoggedIn
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	objectPath := fmt.Sprintf("%s/%s%s", u.ID, uuid.NewString(), strings.ToLower(filepath.Ext(args[0])))
	url, err := a.media.UploadImage(ctx, avatarBucket, objectPath, f, services.UploadOptions{Upsert: true})
	if err != nil {
		return err
	}

	if err := a.store.UpdateProfile(ctx, models.ProfileUpdate{AvatarURL: models.String(url)}); err != nil {
		return err
	}
	a.printf("Avatar uploaded: %s\n", url)
	return nil
}
