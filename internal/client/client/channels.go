package client

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/realtime"
	pb "github.com/dmitrijs2005/instabids/internal/proto"
	"google.golang.org/grpc"
)

// OpenChannel opens a Subscribe stream and returns once the authority has
// acknowledged it. ctx bounds only the opening; the feed lives until the
// returned subscription or the client is closed. There is no reconnection: a
// feed that fails is logged and stays silent.
func (c *GRPCClient) OpenChannel(ctx context.Context, spec realtime.ChannelSpec, handler func(models.ChangeEvent)) (*realtime.Subscription, error) {
	if c.ctx.Err() != nil {
		return nil, ErrClosed
	}

	streamCtx, cancel := context.WithCancel(c.ctx)
	stopOpen := context.AfterFunc(ctx, cancel)

	stream, err := c.client.Subscribe(streamCtx, &pb.SubscribeRequest{
		Schema: spec.Schema,
		Table:  spec.Table,
		Event:  string(spec.Event),
		Filter: spec.Filter,
	})
	if err == nil {
		err = awaitAck(stream)
	}
	if !stopOpen() {
		cancel()
		return nil, ctx.Err()
	}
	if err != nil {
		cancel()
		return nil, mapError(err)
	}

	sub := realtime.Opened(spec.Name, cancel)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()
		for {
			msg, err := stream.Recv()
			if err != nil {
				if streamCtx.Err() == nil && !errors.Is(err, io.EOF) {
					c.logger.Warn(streamCtx, "realtime feed failed", "channel", spec.Name, "error", mapError(err))
				}
				return
			}
			if streamCtx.Err() != nil {
				return
			}
			handler(changeEventFromProto(msg))
		}
	}()

	c.logger.Debug(ctx, "realtime feed opened", "channel", spec.Name, "filter", spec.Filter)
	return sub, nil
}

// awaitAck blocks until the authority sends response headers, which it does
// once the feed is live. A stream that ends before that carries the reason in
// its status.
func awaitAck(stream grpc.ServerStreamingClient[pb.ChangeEvent]) error {
	md, err := stream.Header()
	if err != nil {
		return err
	}
	if md != nil {
		return nil
	}
	if _, err := stream.Recv(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return ErrUnavailable
}
