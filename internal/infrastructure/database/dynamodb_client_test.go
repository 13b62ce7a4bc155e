package database

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Run("defaults for local development", func(t *testing.T) {
		t.Setenv("AWS_REGION", "")
		t.Setenv("AWS_ACCESS_KEY_ID", "")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "")
		t.Setenv("DYNAMODB_ENDPOINT", "")

		cfg, err := NewDynamoDBConfigFromEnv(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "ap-southeast-1" {
			t.Fatalf("expected default region ap-southeast-1, got %s", cfg.Region)
		}

		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil {
			t.Fatalf("retrieve credentials: %v", err)
		}
		if creds.AccessKeyID != "garage-local" || creds.SecretAccessKey != "garage-local" {
			t.Fatalf("expected garage-local static credentials, got %s", creds.AccessKeyID)
		}
	})

	t.Run("env overrides take precedence", func(t *testing.T) {
		t.Setenv("AWS_REGION", "us-west-2")
		t.Setenv("AWS_ACCESS_KEY_ID", "shop-key")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "shop-secret")
		t.Setenv("DYNAMODB_ENDPOINT", "")

		cfg, err := NewDynamoDBConfigFromEnv(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "us-west-2" {
			t.Fatalf("expected us-west-2, got %s", cfg.Region)
		}
		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil {
			t.Fatalf("retrieve credentials: %v", err)
		}
		if creds.AccessKeyID != "shop-key" {
			t.Fatalf("expected shop-key, got %s", creds.AccessKeyID)
		}
	})

	t.Run("local endpoint pins dynamodb only", func(t *testing.T) {
		resolver := localEndpointResolver("http://dynamodb:8000")

		ep, err := resolver(dynamodb.ServiceID, "ap-southeast-1")
		if err != nil {
			t.Fatalf("resolve dynamodb: %v", err)
		}
		if ep.URL != "http://dynamodb:8000" || !ep.HostnameImmutable {
			t.Fatalf("unexpected endpoint: %+v", ep)
		}

		if _, err := resolver("S3", "ap-southeast-1"); err == nil {
			t.Fatalf("expected fallthrough error for other services")
		}
	})
}
