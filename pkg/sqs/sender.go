package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
)

// maxBatchSize is the SQS limit of entries per SendMessageBatch call
const maxBatchSize = 10

// BatchMessage represents a message to be sent in batch
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult represents the result of a batch send operation
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

// SQSClient is the subset of the SQS API used by Sender
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Sender publishes JSON messages to SQS queues looked up by name.
// Queue URLs are resolved once per queue name.
type Sender struct {
	sqsClient SQSClient
	queueURLs sync.Map
}

func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{sqsClient: sqsClient}
}

// SendMessage serializes body to JSON and sends it to queueName
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	queueURL, err := s.queueURL(ctx, queueName)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(payload)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}
	return nil
}

// SendMessageBatch sends messages in chunks of ten, one goroutine per chunk.
// Messages without an id get a random one. A chunk that fails as a whole
// marks all of its ids as failed instead of aborting the others.
func (s *Sender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	result := &BatchResult{Successful: []string{}, Failed: []string{}}
	if len(messages) == 0 {
		return result, nil
	}

	queueURL, err := s.queueURL(ctx, queueName)
	if err != nil {
		return nil, err
	}

	for i := range messages {
		if messages[i].MessageID == "" {
			messages[i].MessageID = uuid.NewString()
		}
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for start := 0; start < len(messages); start += maxBatchSize {
		chunk := messages[start:min(start+maxBatchSize, len(messages))]

		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, failed, err := s.sendChunk(ctx, queueURL, chunk)
			if err != nil {
				ok = nil
				failed = messageIDs(chunk)
			}
			mu.Lock()
			result.Successful = append(result.Successful, ok...)
			result.Failed = append(result.Failed, failed...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	return result, nil
}

func (s *Sender) sendChunk(ctx context.Context, queueURL string, chunk []BatchMessage) ([]string, []string, error) {
	entries := make([]types.SendMessageBatchRequestEntry, 0, len(chunk))
	var failed []string

	for _, msg := range chunk {
		payload, err := json.Marshal(msg.Body)
		if err != nil {
			failed = append(failed, msg.MessageID)
			continue
		}
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          aws.String(msg.MessageID),
			MessageBody: aws.String(string(payload)),
		})
	}
	if len(entries) == 0 {
		return nil, failed, nil
	}

	output, err := s.sqsClient.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(queueURL),
		Entries:  entries,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send message batch: %w", err)
	}

	var ok []string
	for _, entry := range output.Successful {
		ok = append(ok, aws.ToString(entry.Id))
	}
	for _, entry := range output.Failed {
		failed = append(failed, aws.ToString(entry.Id))
	}
	return ok, failed, nil
}

func (s *Sender) queueURL(ctx context.Context, queueName string) (string, error) {
	if cached, ok := s.queueURLs.Load(queueName); ok {
		return cached.(string), nil
	}

	out, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}
	if out.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}

	s.queueURLs.Store(queueName, *out.QueueUrl)
	return *out.QueueUrl, nil
}

func messageIDs(messages []BatchMessage) []string {
	ids := make([]string, len(messages))
	for i, msg := range messages {
		ids[i] = msg.MessageID
	}
	return ids
}
