package aws

import (
	"context"
	"fmt"

	"weather-widget/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadConfig builds the AWS configuration from app.cloud.* properties.
// Without static credentials the default chain (environment, shared files, IAM roles) is used.
func LoadConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		secretKey := resource.GetString("app.cloud.aws-secret-access-key")
		if secretKey != "" {
			opts = append(opts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
		}
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}
