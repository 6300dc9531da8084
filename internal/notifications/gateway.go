package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	model "auctions/internal/models"
	"auctions/utils"

	"github.com/go-redis/redis/v8"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=notifications

// Gateway tells bidders that they now hold the winning bid of an auction
type Gateway interface {
	NotifyAboutWinningAuction(ctx context.Context, auctionID model.AuctionID, bidderID model.BidderID) error
}

// WinningAuctionEvent is the message published for every winner change
type WinningAuctionEvent struct {
	EventID   string          `json:"event_id"`
	Type      string          `json:"type"`
	AuctionID model.AuctionID `json:"auction_id"`
	BidderID  model.BidderID  `json:"bidder_id"`
	SentAt    time.Time       `json:"sent_at"`
}

const winningAuctionEventType = "winning_auction"

func newWinningAuctionEvent(auctionID model.AuctionID, bidderID model.BidderID, now time.Time) WinningAuctionEvent {
	return WinningAuctionEvent{
		EventID:   utils.NewEventID(),
		Type:      winningAuctionEventType,
		AuctionID: auctionID,
		BidderID:  bidderID,
		SentAt:    now.UTC(),
	}
}

// LogGateway only records notifications in the application log
type LogGateway struct{}

func NewLogGateway() *LogGateway {
	return &LogGateway{}
}

func (g *LogGateway) NotifyAboutWinningAuction(_ context.Context, auctionID model.AuctionID, bidderID model.BidderID) error {
	utils.Info("notifying bidder about winning auction", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
	})
	return nil
}

// RedisGateway publishes a WinningAuctionEvent as JSON on a pub/sub channel,
// where the mailer picks it up.
type RedisGateway struct {
	client  *redis.Client
	channel string
	now     func() time.Time
}

func NewRedisGateway(client *redis.Client, channel string) *RedisGateway {
	return &RedisGateway{client: client, channel: channel, now: time.Now}
}

func (g *RedisGateway) NotifyAboutWinningAuction(ctx context.Context, auctionID model.AuctionID, bidderID model.BidderID) error {
	payload, err := json.Marshal(newWinningAuctionEvent(auctionID, bidderID, g.now()))
	if err != nil {
		return fmt.Errorf("encode winning auction event: %w", err)
	}
	if err := g.client.Publish(ctx, g.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish winning auction event for auction %d: %w", auctionID, err)
	}
	return nil
}
