package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "HTTP_PORT", "AWS_REGION", "WORK_ORDERS_TABLE", "SERVICES_TABLE", "CATALOG_PAGE_SIZE", "PAYMENT_GATEWAY_MOCK")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "work_orders", cfg.Tables.WorkOrders)
	assert.Equal(t, "services", cfg.Tables.Services)
	assert.Equal(t, 1000, cfg.CatalogPageSize)
	assert.False(t, cfg.Payments.Mock)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("WORK_ORDERS_TABLE", "wo")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "http://dynamodb:8000", cfg.AWS.DynamoDBEndpoint)
	assert.Equal(t, "wo", cfg.Tables.WorkOrders)
	assert.True(t, cfg.Payments.Mock)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load()
	require.Error(t, err)
}
