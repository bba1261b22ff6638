package mockingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/f1-telemetry-producer/pkg/config"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/ingest"
)

func TestFlagDefaults(t *testing.T) {
	cmd := NewMockIngestCmd()
	assert.NoError(t, cmd.ParseFlags([]string{}))
	assert.Equal(t, "localhost:50051", config.ListenAddr)
	assert.Equal(t, ingest.DefaultStatus, config.ServerStatus)
	assert.Equal(t, int32(0), severAfter)
}

func TestStartServerInvalidDelay(t *testing.T) {
	responseDelay = "later"
	defer func() { responseDelay = "0" }()
	assert.Error(t, startServer(context.Background()))
}

func TestStartServerListenError(t *testing.T) {
	config.ListenAddr = "256.0.0.1:0"
	assert.Error(t, startServer(context.Background()))
}
