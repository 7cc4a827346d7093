package client

import (
	"time"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	pb "github.com/dmitrijs2005/instabids/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timeFromProto maps an unset timestamp to the zero time.
func timeFromProto(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func optionalTimeFromProto(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func userFromProto(u *pb.User) models.AuthUser {
	return models.AuthUser{
		ID:               u.GetId(),
		Email:            u.GetEmail(),
		EmailConfirmedAt: optionalTimeFromProto(u.GetEmailConfirmedAt()),
		CreatedAt:        timeFromProto(u.GetCreatedAt()),
		UserMetadata:     u.GetUserMetadata(),
	}
}

func sessionFromProto(s *pb.Session) *models.AuthSession {
	return &models.AuthSession{
		AccessToken:  s.GetAccessToken(),
		RefreshToken: s.GetRefreshToken(),
		ExpiresAt:    timeFromProto(s.GetExpiresAt()),
		User:         userFromProto(s.GetUser()),
	}
}

func prefsFromProto(p *pb.NotificationPreferences) *models.NotificationPreferences {
	if p == nil {
		return nil
	}
	return &models.NotificationPreferences{
		EmailNotifications: p.GetEmailNotifications(),
		PushNotifications:  p.GetPushNotifications(),
		BidAlerts:          p.GetBidAlerts(),
		AuctionUpdates:     p.GetAuctionUpdates(),
		MarketingEmails:    p.GetMarketingEmails(),
	}
}

func prefsToProto(p *models.NotificationPreferences) *pb.NotificationPreferences {
	if p == nil {
		return nil
	}
	return &pb.NotificationPreferences{
		EmailNotifications: p.EmailNotifications,
		PushNotifications:  p.PushNotifications,
		BidAlerts:          p.BidAlerts,
		AuctionUpdates:     p.AuctionUpdates,
		MarketingEmails:    p.MarketingEmails,
	}
}

func profileFromProto(p *pb.Profile) *models.Profile {
	return &models.Profile{
		ID:                      p.GetId(),
		Username:                p.GetUsername(),
		FullName:                p.FullName,
		AvatarURL:               p.AvatarUrl,
		Bio:                     p.Bio,
		Phone:                   p.Phone,
		NotificationPreferences: prefsFromProto(p.GetNotificationPreferences()),
		CreatedAt:               timeFromProto(p.GetCreatedAt()),
		UpdatedAt:               optionalTimeFromProto(p.GetUpdatedAt()),
	}
}

func profileUpdateToProto(u models.ProfileUpdate) *pb.ProfileUpdate {
	return &pb.ProfileUpdate{
		Username:                u.Username,
		FullName:                u.FullName,
		AvatarUrl:               u.AvatarURL,
		Bio:                     u.Bio,
		Phone:                   u.Phone,
		NotificationPreferences: prefsToProto(u.NotificationPreferences),
	}
}

func changeEventFromProto(ev *pb.ChangeEvent) models.ChangeEvent {
	return models.ChangeEvent{
		Schema:          ev.GetSchema(),
		Table:           ev.GetTable(),
		Type:            models.ChangeEventType(ev.GetType()),
		Record:          ev.GetRecord(),
		OldRecord:       ev.GetOldRecord(),
		CommitTimestamp: timeFromProto(ev.GetCommitTimestamp()),
	}
}
