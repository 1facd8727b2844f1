package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofasta/pkg/config"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    config.OutputFormat
		wantErr bool
	}{
		{"text", "text", config.FormatText, false},
		{"table", "table", config.FormatTable, false},
		{"json", "json", config.FormatJSON, false},
		{"empty defaults to text", "", config.FormatText, false},
		{"unknown", "xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.ParseOutputFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    config.ColorMode
		wantErr bool
	}{
		{"auto", "auto", config.ColorAuto, false},
		{"always", "always", config.ColorAlways, false},
		{"never", "never", config.ColorNever, false},
		{"empty defaults to auto", "", config.ColorAuto, false},
		{"unknown", "sometimes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.ParseColorMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputFormatIsValid(t *testing.T) {
	assert.True(t, config.FormatText.IsValid())
	assert.True(t, config.FormatTable.IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
}
