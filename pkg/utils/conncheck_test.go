package utils

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForTCP(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	assert.NoError(t, WaitForTCP(context.Background(), l.Addr().String(), 0))
}

func TestWaitForTCPRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	assert.Error(t, WaitForTCP(context.Background(), addr, 0))
	assert.Error(t, WaitForTCP(context.Background(), addr, 300*time.Millisecond))
}

func TestExtractFromDBURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"postgresql://user:pw@dbhost:5433/telemetry", "dbhost:5433"},
		{"postgresql://user:pw@dbhost/telemetry", "dbhost:5432"},
		{"postgres://localhost/telemetry", "localhost:5432"},
		{"mysql://localhost/telemetry", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFromDBURL(tt.url))
		})
	}
}
