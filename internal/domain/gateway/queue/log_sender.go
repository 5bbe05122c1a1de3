package queue

import (
	"context"

	"weather-widget/pkg/log"

	"go.uber.org/zap"
)

// LogSender writes messages to the application log instead of a broker
type LogSender struct{}

var _ Sender = LogSender{}

func NewLogSender() LogSender {
	return LogSender{}
}

func (LogSender) SendMessage(_ context.Context, destination string, body any) error {
	log.Info("message published", zap.String("destination", destination), zap.Any("body", body))
	return nil
}

func (s LogSender) SendMessageBatch(ctx context.Context, destination string, messages []BatchMessage) (*BatchResult, error) {
	result := &BatchResult{Successful: make([]string, 0, len(messages)), Failed: []string{}}
	for _, msg := range messages {
		_ = s.SendMessage(ctx, destination, msg.Body)
		result.Successful = append(result.Successful, msg.MessageID)
	}
	return result, nil
}
