package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"weather-widget/pkg/redis"
)

// RedisSender publishes each message as JSON on a Redis pub/sub channel
type RedisSender struct {
	client *redis.Client
}

var _ Sender = (*RedisSender)(nil)

func NewRedisSender(client *redis.Client) *RedisSender {
	return &RedisSender{client: client}
}

func (s *RedisSender) SendMessage(ctx context.Context, channel string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}
	if err := s.client.Publish(ctx, channel, payload); err != nil {
		return fmt.Errorf("failed to publish to channel %s: %w", channel, err)
	}
	return nil
}

// SendMessageBatch publishes messages one by one; a failure does not stop the rest
func (s *RedisSender) SendMessageBatch(ctx context.Context, channel string, messages []BatchMessage) (*BatchResult, error) {
	result := &BatchResult{Successful: []string{}, Failed: []string{}}
	for _, msg := range messages {
		if err := s.SendMessage(ctx, channel, msg.Body); err != nil {
			result.Failed = append(result.Failed, msg.MessageID)
			continue
		}
		result.Successful = append(result.Successful, msg.MessageID)
	}
	return result, nil
}
