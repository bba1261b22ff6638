package importcmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/f1-telemetry-producer/pkg/config"
)

func TestRunImportRejects(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		source   string
		file     string
	}{
		{"invalid selector", "Monza", "csv", "lap.csv"},
		{"postgres source", "2024/Monza/Q/VER", "postgres", ""},
		{"missing file", "2024/Monza/Q/VER", "csv", "/nonexistent/lap.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.Selector, config.Source, config.File = tt.selector, tt.source, tt.file
			var out bytes.Buffer
			assert.Error(t, runImport(context.Background(), &out))
			assert.Empty(t, out.String())
		})
	}
}
