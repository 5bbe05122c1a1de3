package aws

import (
	"weather-widget/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// NewSqsClient creates an SQS client, pointed at app.cloud.aws-endpoint when set (LocalStack)
func NewSqsClient(cfg aws.Config) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
