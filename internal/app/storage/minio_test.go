package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"lexforge/internal/app/config"
)

func TestContractKey(t *testing.T) {
	assert.Equal(t, "contracts/0b7e.pdf", ContractKey("0b7e"))
}

func TestNewMinIOClientRejectsBadEndpoint(t *testing.T) {
	_, err := NewMinIOClient(context.Background(), config.MinIOConfig{Endpoint: "http://bad endpoint", Bucket: "contracts"})
	assert.Error(t, err)
}
