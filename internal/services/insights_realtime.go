package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/stoicaf/stoicaf-backend/internal/database"
)

// Insights event types pushed to dashboard WebSocket clients.
const (
	EventTypeInsightsRefresh = "insights_refresh"
	EventTypeHello           = "hello"
)

// Reasons an insights refresh was triggered.
const (
	RefreshReasonEntryCreated = "entry_created"
	RefreshReasonEntryUpdated = "entry_updated"
	RefreshReasonEntryDeleted = "entry_deleted"
)

// InsightsEvent tells a connected dashboard that the user's analytics are
// stale and should be refetched. The payload stays small on purpose: the
// dashboard already knows how to load /api/insights.
type InsightsEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

const insightsChannelPrefix = "insights:user:"

// insightsHub fans Redis-delivered events out to this instance's WebSocket
// subscribers, keyed by user ID. A user may have several open dashboards
// (phone + laptop), so each user maps to a list of subscriber channels.
type insightsHub struct {
	mu   sync.RWMutex
	subs map[string][]chan InsightsEvent
}

var (
	hub = &insightsHub{subs: make(map[string][]chan InsightsEvent)}

	insightsSubscriberStarted sync.Once
)

// SubscribeInsights registers a local subscriber for one user's events.
// The returned function must be called to unsubscribe; it closes the channel.
func SubscribeInsights(userID string) (<-chan InsightsEvent, func()) {
	ch := make(chan InsightsEvent, 8)

	hub.mu.Lock()
	hub.subs[userID] = append(hub.subs[userID], ch)
	hub.mu.Unlock()

	unsubscribe := func() {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		channels := hub.subs[userID]
		for i, c := range channels {
			if c == ch {
				hub.subs[userID] = append(channels[:i], channels[i+1:]...)
				close(ch)
				break
			}
		}
		if len(hub.subs[userID]) == 0 {
			delete(hub.subs, userID)
		}
	}
	return ch, unsubscribe
}

// fanOutInsightsEvent delivers an event to all local subscribers of the user.
// Slow consumers are skipped rather than blocking the subscriber loop.
func fanOutInsightsEvent(event InsightsEvent) {
	if event.UserID == "" {
		return
	}

	hub.mu.RLock()
	defer hub.mu.RUnlock()

	for _, ch := range hub.subs[event.UserID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// PublishInsightsEvent publishes an event to the user's Redis channel so
// every instance (and every connected device) sees it.
func PublishInsightsEvent(ctx context.Context, event InsightsEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return database.RedisClient.Publish(ctx, insightsChannelPrefix+event.UserID, data).Err()
}

// NotifyEntriesChanged invalidates the user's cached insights and tells
// connected dashboards to refetch. Called after every entry mutation.
func NotifyEntriesChanged(ctx context.Context, userID, reason string) {
	if err := Cache.Delete(InsightsCacheKey(userID)); err != nil {
		log.Warn("failed to invalidate insights cache", "user", userID, "err", err)
	}
	err := PublishInsightsEvent(ctx, InsightsEvent{
		Type:   EventTypeInsightsRefresh,
		UserID: userID,
		Reason: reason,
	})
	if err != nil {
		log.Warn("failed to publish insights event", "user", userID, "err", err)
	}
}

// StartRedisInsightsSubscriber ensures a single shared Redis listener per
// instance.
func StartRedisInsightsSubscriber(ctx context.Context) {
	insightsSubscriberStarted.Do(func() {
		go runInsightsSubscriber(ctx)
	})
}

func runInsightsSubscriber(ctx context.Context) {
	client := database.RedisClient
	if client == nil {
		log.Error("Redis client not initialized; insights subscriber not started")
		return
	}

	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		func() {
			pubsub := client.PSubscribe(ctx, insightsChannelPrefix+"*")
			defer pubsub.Close()

			log.Info("Insights Redis subscriber started", "pattern", insightsChannelPrefix+"*")

			for {
				msg, err := pubsub.ReceiveMessage(ctx)
				if err != nil {
					log.Warn("insights subscriber error", "err", err)
					time.Sleep(backoff)
					backoff *= 2
					if backoff > 30*time.Second {
						backoff = 30 * time.Second
					}
					return
				}

				backoff = time.Second

				var event InsightsEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Warn("failed to unmarshal insights event", "err", err)
					continue
				}

				fanOutInsightsEvent(event)
			}
		}()
	}
}
