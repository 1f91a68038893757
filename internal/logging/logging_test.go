package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
		valid    bool
	}{
		{"", DefaultLevel, true},
		{"debug", zerolog.DebugLevel, true},
		{" INFO ", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"loud", DefaultLevel, false},
	}

	for _, tt := range tests {
		lvl, err := ParseLevel(tt.input)
		if tt.valid {
			require.NoError(t, err, "ParseLevel(%q)", tt.input)
		} else {
			require.Error(t, err, "ParseLevel(%q)", tt.input)
		}
		assert.Equal(t, tt.expected, lvl, "ParseLevel(%q)", tt.input)
	}
}

func TestNewWritesJSONToNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug")
	require.NoError(t, err)

	logger.Debug().Str("guess", "c").Msg("turn")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "c", entry["guess"])
	assert.Equal(t, "turn", entry["message"])
}

func TestNewDefaultLevelFiltersInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "")
	require.NoError(t, err)

	logger.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf, "shouty")
	assert.Error(t, err)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
}
