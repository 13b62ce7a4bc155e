package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultRegion = "ap-southeast-1"

// ConnectDynamoDB builds the DynamoDB client shared by all repositories.
//
// Env vars:
//   - AWS_REGION (default: ap-southeast-1, where the shop deployment runs)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: garage-local, for
//     local DynamoDB which accepts any static credentials)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000 in compose)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("[database][infra] failed to create dynamodb config: %v", err)
	}
	log.Printf("[database][infra] dynamodb client ready region=%s endpoint=%s",
		cfg.Region, getenvDefault("DYNAMODB_ENDPOINT", "aws"))
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "garage-local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "garage-local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(getenvDefault("AWS_REGION", defaultRegion)),
		config.WithCredentialsProvider(creds),
	}
	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(localEndpointResolver(endpoint)))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// localEndpointResolver pins the DynamoDB endpoint for local development.
// Every other service falls through to the SDK's default resolution.
func localEndpointResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service == dynamodb.ServiceID {
			return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
