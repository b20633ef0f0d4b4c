package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/config"
)

func TestNewLogger_AutoIsJSONOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.LogConfig{Level: "info", Format: config.FormatAuto})
	require.NoError(t, err)

	logger.Info("hello", "k", 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "hello", rec["msg"])
}

func TestNewLogger_TextAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.LogConfig{Level: "warn", Format: config.FormatText})
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	out := buf.String()
	require.NotContains(t, out, "quiet")
	require.True(t, strings.Contains(out, "msg=loud"), out)
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, config.LogConfig{Level: "loud", Format: config.FormatText})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 3, 4")
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, p)

	for _, bad := range []string{"3", "a,4", "3,b"} {
		_, err := parsePoint(bad)
		require.ErrorIs(t, err, config.ErrInvalidConfig, bad)
	}
}
