package database

import (
	"context"
	"testing"

	"mecanica_workorders/internal/infrastructure/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.AWS{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected sa-east-1, got %s", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("unexpected access key: %s", creds.AccessKeyID)
	}
}

func TestConnectDynamoDB(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), config.AWS{
		Region:           "us-east-1",
		AccessKeyID:      "local",
		SecretAccessKey:  "local",
		DynamoDBEndpoint: "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
		t.Fatalf("unexpected endpoint: %v", got)
	}
}
