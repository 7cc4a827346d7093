package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/instabids/internal/changefeed"
	"github.com/dmitrijs2005/instabids/internal/common"
	pb "github.com/dmitrijs2005/instabids/internal/proto"
	"github.com/dmitrijs2005/instabids/internal/server/models"
	"github.com/dmitrijs2005/instabids/internal/server/realtime"
	"github.com/dmitrijs2005/instabids/internal/server/services"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const publicSchema = "public"

// subscribableTables are the tables with change triggers.
var subscribableTables = map[string]bool{
	"auctions": true,
	"bids":     true,
	"profiles": true,
}

var validEvents = map[string]bool{
	"":                true,
	realtime.EventAll: true,
	"INSERT":          true,
	"UPDATE":          true,
	"DELETE":          true,
}

// toStatus maps service errors onto gRPC codes. Credential and token errors
// keep their message, which clients match on.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrEmailNotConfirmed),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, rootMessage(err))
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrInvalidEmail),
		errors.Is(err, common.ErrWeakPassword),
		errors.Is(err, services.ErrInvalidUsername),
		errors.Is(err, services.ErrUnknownBucket),
		errors.Is(err, services.ErrInvalidPath),
		errors.Is(err, changefeed.ErrInvalidFilter):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

// rootMessage returns the message of the sentinel at the bottom of err.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func optionalTime(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func toProtoUser(u *models.User) *pb.User {
	out := &pb.User{
		Id:               u.ID,
		Email:            u.Email,
		EmailConfirmedAt: optionalTime(u.EmailConfirmedAt),
		UserMetadata:     u.Metadata,
	}
	if !u.CreatedAt.IsZero() {
		out.CreatedAt = timestamppb.New(u.CreatedAt)
	}
	return out
}

func toProtoSession(sess *services.Session) *pb.Session {
	return &pb.Session{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		ExpiresAt:    timestamppb.New(sess.ExpiresAt),
		User:         toProtoUser(sess.User),
	}
}

func toProtoProfile(p *models.Profile) *pb.Profile {
	out := &pb.Profile{
		Id:        p.ID,
		Username:  p.Username,
		FullName:  p.FullName,
		AvatarUrl: p.AvatarURL,
		Bio:       p.Bio,
		Phone:     p.Phone,
		UpdatedAt: optionalTime(p.UpdatedAt),
	}
	if !p.CreatedAt.IsZero() {
		out.CreatedAt = timestamppb.New(p.CreatedAt)
	}
	if np := p.NotificationPreferences; np != nil {
		out.NotificationPreferences = &pb.NotificationPreferences{
			EmailNotifications: np.EmailNotifications,
			PushNotifications:  np.PushNotifications,
			BidAlerts:          np.BidAlerts,
			AuctionUpdates:     np.AuctionUpdates,
			MarketingEmails:    np.MarketingEmails,
		}
	}
	return out
}

func fromProtoUpdate(u *pb.ProfileUpdate) models.ProfileUpdate {
	if u == nil {
		return models.ProfileUpdate{}
	}
	out := models.ProfileUpdate{
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarUrl,
		Bio:       u.Bio,
		Phone:     u.Phone,
	}
	if np := u.GetNotificationPreferences(); np != nil {
		out.NotificationPreferences = &models.NotificationPreferences{
			EmailNotifications: np.GetEmailNotifications(),
			PushNotifications:  np.GetPushNotifications(),
			BidAlerts:          np.GetBidAlerts(),
			AuctionUpdates:     np.GetAuctionUpdates(),
			MarketingEmails:    np.GetMarketingEmails(),
		}
	}
	return out
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	user, err := s.auth.SignUp(ctx, req.GetEmail(), req.GetPassword(), req.GetData())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.SignUpResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SessionResponse, error) {
	sess, err := s.auth.SignIn(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SessionResponse{Session: toProtoSession(sess)}, nil
}

func (s *GRPCServer) RefreshSession(ctx context.Context, req *pb.RefreshSessionRequest) (*pb.SessionResponse, error) {
	if req.GetRefreshToken() == "" {
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}
	sess, err := s.auth.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SessionResponse{Session: toProtoSession(sess)}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, _ *pb.SignOutRequest) (*pb.Empty, error) {
	userID, _ := userIDFromContext(ctx)
	if err := s.auth.SignOut(ctx, userID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, _ *pb.Empty) (*pb.UserResponse, error) {
	userID, _ := userIDFromContext(ctx)
	user, err := s.auth.GetUser(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) VerifyEmail(ctx context.Context, req *pb.VerifyEmailRequest) (*pb.UserResponse, error) {
	user, err := s.auth.VerifyEmail(ctx, req.GetEmail(), req.GetToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.ProfileResponse, error) {
	if req.GetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	p, err := s.profiles.Get(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ProfileResponse{Profile: toProtoProfile(p)}, nil
}

func (s *GRPCServer) FindProfile(ctx context.Context, req *pb.FindProfileRequest) (*pb.ProfileResponse, error) {
	if strings.TrimSpace(req.GetUsername()) == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}
	p, err := s.profiles.FindByUsername(ctx, req.GetUsername())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ProfileResponse{Profile: toProtoProfile(p)}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.ProfileResponse, error) {
	userID, _ := userIDFromContext(ctx)
	id := req.GetId()
	if id == "" {
		id = userID
	}
	p, err := s.profiles.Update(ctx, userID, id, fromProtoUpdate(req.GetUpdate()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ProfileResponse{Profile: toProtoProfile(p)}, nil
}

func (s *GRPCServer) PresignUpload(ctx context.Context, req *pb.PresignUploadRequest) (*pb.PresignUploadResponse, error) {
	userID, _ := userIDFromContext(ctx)
	up, err := s.storage.PresignUpload(ctx, userID, req.GetBucket(), req.GetPath(), req.GetContentType(), req.GetUpsert())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.PresignUploadResponse{
		UploadUrl: up.UploadURL,
		PublicUrl: up.PublicURL,
		Headers:   up.Headers,
	}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// Subscribe streams the changes of one table. Response headers are sent once
// the feed is live; they carry the subscription id.
func (s *GRPCServer) Subscribe(req *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.ChangeEvent]) error {
	ctx := stream.Context()

	if req.GetSchema() != "" && req.GetSchema() != publicSchema {
		return status.Errorf(codes.InvalidArgument, "unknown schema %q", req.GetSchema())
	}
	if !subscribableTables[req.GetTable()] {
		return status.Errorf(codes.InvalidArgument, "table %q has no change feed", req.GetTable())
	}
	event := strings.ToUpper(req.GetEvent())
	if !validEvents[event] {
		return status.Errorf(codes.InvalidArgument, "unknown event %q", req.GetEvent())
	}
	filter, err := changefeed.ParseFilter(req.GetFilter())
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	sub, err := s.hub.Subscribe(ctx, req.GetTable(), event, filter)
	if err != nil {
		s.logger.Error(ctx, "subscribe failed", "table", req.GetTable(), "error", err)
		return status.Error(codes.Unavailable, "change feed unavailable")
	}
	defer sub.Close()

	id := uuid.NewString()
	if err := stream.SendHeader(metadata.Pairs("subscription-id", id)); err != nil {
		return err
	}
	s.logger.Debug(ctx, "subscription opened", "id", id, "table", req.GetTable(), "filter", filter.String())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return status.Error(codes.Unavailable, "server shutting down")
		case ev, ok := <-sub.Events():
			if !ok {
				return status.Error(codes.Unavailable, "change feed closed")
			}
			if err := stream.Send(ev); err != nil {
				return err
			}
		}
	}
}
