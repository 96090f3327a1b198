// Package notify delivers potential lost/found matches to a side channel.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/erazemk/lostfound/internal/model"
)

// Notifier receives the candidates found for a newly reported item.
type Notifier interface {
	NotifyMatches(ctx context.Context, item *model.Item, matches []model.Item) error
}

// MatchEvent is the payload published for a match set.
type MatchEvent struct {
	ItemID    int64     `json:"itemId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	MatchIDs  []int64   `json:"matchIds"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewMatchEvent summarizes a match set.
func NewMatchEvent(item *model.Item, matches []model.Item) MatchEvent {
	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return MatchEvent{
		ItemID:    item.ID,
		Type:      item.Type,
		Title:     item.Title,
		Category:  item.Category,
		MatchIDs:  ids,
		CreatedAt: item.CreatedAt,
	}
}

// Log writes match sets to the default logger.
type Log struct{}

// NotifyMatches logs one line per match set.
func (Log) NotifyMatches(_ context.Context, item *model.Item, matches []model.Item) error {
	ev := NewMatchEvent(item, matches)
	slog.Info("potential matches found",
		"item", ev.ItemID, "type", ev.Type, "title", ev.Title, "matches", ev.MatchIDs)
	return nil
}

// DefaultChannel is the pub/sub channel match events are published to.
const DefaultChannel = "lostfound:matches"

// Redis publishes match events as JSON on a pub/sub channel.
type Redis struct {
	Client  *redis.Client
	Channel string
}

// NewRedis returns a Redis notifier publishing on DefaultChannel.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{Client: client, Channel: DefaultChannel}
}

// NotifyMatches publishes the match event.
func (r *Redis) NotifyMatches(ctx context.Context, item *model.Item, matches []model.Item) error {
	payload, err := json.Marshal(NewMatchEvent(item, matches))
	if err != nil {
		return fmt.Errorf("encoding match event: %w", err)
	}
	if err := r.Client.Publish(ctx, r.Channel, payload).Err(); err != nil {
		return fmt.Errorf("publishing match event: %w", err)
	}
	return nil
}
