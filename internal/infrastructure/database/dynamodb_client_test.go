package database

import (
	"context"
	"testing"

	appconfig "checkout_gateway/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig_StaticCredentials(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), appconfig.AuditConfig{
		Region:    "sa-east-1",
		AccessKey: "local",
		SecretKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestNewDynamoDBConfig_LocalEndpointWithoutKeys(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), appconfig.AuditConfig{
		Region:   "us-east-1",
		Endpoint: "http://localhost:8000",
	})
	require.NoError(t, err)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

func TestNewDynamoDBConfig_DefaultChainWithoutKeys(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDCHAIN")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "chain-secret")

	cfg, err := NewDynamoDBConfig(context.Background(), appconfig.AuditConfig{Region: "sa-east-1"})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDCHAIN", creds.AccessKeyID)
}

func TestConnectDynamoDB_WithEndpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), appconfig.AuditConfig{
		Region:    "us-east-1",
		Endpoint:  "http://localhost:8000",
		AccessKey: "local",
		SecretKey: "local",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
