// Package events publishes domain change events to Pub/Sub so background
// workers can react without coupling to request handling.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog"

	"github.com/plateful/plateful/internal/meal"
)

// DayFormat is the wire format for calendar days in events.
const DayFormat = "2006-01-02"

// MealChangedEvent signals that a user's meals changed for a calendar day.
// The worker recomputes that day's summary snapshot in response.
type MealChangedEvent struct {
	UserID string `json:"user_id"`

	// Day is the changed calendar day, formatted as 2006-01-02.
	Day string `json:"day"`

	// Timezone is the IANA zone the day was computed in.
	Timezone string `json:"timezone"`
}

// PublisherConfig holds configuration for the event publisher.
type PublisherConfig struct {
	ProjectID string
	TopicName string
	Logger    zerolog.Logger
}

// Publisher publishes domain events to a Pub/Sub topic.
type Publisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicName string
	logger    zerolog.Logger
}

// NewPublisher creates a new event publisher.
func NewPublisher(ctx context.Context, cfg PublisherConfig) (*Publisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	return &Publisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicName),
		topicName: cfg.TopicName,
		logger:    cfg.Logger,
	}, nil
}

// MealChanged publishes a meal-changed event for the day. Publishing is
// best-effort: failures are logged, never surfaced to the meal write.
func (p *Publisher) MealChanged(ctx context.Context, userID string, day time.Time) {
	event := MealChangedEvent{
		UserID:   userID,
		Day:      day.Format(DayFormat),
		Timezone: day.Location().String(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to marshal meal-changed event")
		return
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{Data: data})

	// Resolve off the request path; the result only matters for logging.
	go func() {
		id, err := result.Get(context.WithoutCancel(ctx))
		if err != nil {
			p.logger.Error().
				Err(err).
				Str("topic", p.topicName).
				Str("user_id", userID).
				Str("day", event.Day).
				Msg("failed to publish meal-changed event")
			return
		}
		p.logger.Debug().
			Str("message_id", id).
			Str("day", event.Day).
			Msg("published meal-changed event")
	}()
}

// Close flushes pending messages and closes the Pub/Sub client.
func (p *Publisher) Close() error {
	p.publisher.Stop()
	return p.client.Close()
}

// Ensure Publisher implements the meal change notifier.
var _ meal.ChangeNotifier = (*Publisher)(nil)
