package aws

import (
	"context"

	"weather-widget/internal/domain/gateway/queue"
	"weather-widget/pkg/sqs"
)

// SQSSenderAdapter adapts the pkg/sqs.Sender to implement domain queue.Sender interface
type SQSSenderAdapter struct {
	sqsSender *sqs.Sender
}

var _ queue.Sender = (*SQSSenderAdapter)(nil)

// NewSQSSenderAdapter creates a new SQS sender adapter that implements domain interface
func NewSQSSenderAdapter(sqsClient sqs.SQSClient) *SQSSenderAdapter {
	return &SQSSenderAdapter{
		sqsSender: sqs.NewSender(sqsClient),
	}
}

func (adapter *SQSSenderAdapter) SendMessage(ctx context.Context, queueName string, body any) error {
	return adapter.sqsSender.SendMessage(ctx, queueName, body)
}

func (adapter *SQSSenderAdapter) SendMessageBatch(ctx context.Context, queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	sqsMessages := make([]sqs.BatchMessage, len(messages))
	for i, msg := range messages {
		sqsMessages[i] = sqs.BatchMessage{MessageID: msg.MessageID, Body: msg.Body}
	}

	result, err := adapter.sqsSender.SendMessageBatch(ctx, queueName, sqsMessages)
	if err != nil {
		return nil, err
	}
	return &queue.BatchResult{Successful: result.Successful, Failed: result.Failed}, nil
}
