package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func decodeLines(t *testing.T, data string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestInitLogger_Levels(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	closer := InitLogger(&buf, false, "")
	defer closer()

	LogDebug("hidden")
	LogInfo("shown", "scenario", "anchor_start")

	recs := decodeLines(t, buf.String())
	require.Len(t, recs, 1)
	assert.Equal(t, "shown", recs[0]["msg"])
	assert.Equal(t, "anchor_start", recs[0]["scenario"])

	buf.Reset()
	closer = InitLogger(&buf, true, "")
	defer closer()
	LogDebug("visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
}

func TestInitLogger_FileFanOut(t *testing.T) {
	restoreDefault(t)

	path := filepath.Join(t.TempDir(), "bench.log")
	var buf bytes.Buffer
	closer := InitLogger(&buf, false, path)

	LogError("export failed", errors.New("disk full"), "stage", "export")
	require.NoError(t, closer())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, out := range []string{buf.String(), string(data)} {
		recs := decodeLines(t, out)
		require.Len(t, recs, 1)
		assert.Equal(t, "ERROR", recs[0]["level"])
		assert.Equal(t, "disk full", recs[0]["error"])
		assert.Equal(t, "export", recs[0]["stage"])
	}
}

func TestInitLogger_UnopenableFile(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	closer := InitLogger(&buf, false, filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.NoError(t, closer())
	assert.Contains(t, buf.String(), "Failed to open log file")

	LogWarn("still logging", errors.New("oops"))
	assert.Contains(t, buf.String(), `"msg":"still logging"`)
}

func TestMultiHandler_RespectsPerHandlerLevel(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}
	logger := slog.New(h).With("engine", "go").WithGroup("run")

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
	logger.Debug("pass", "n", 1)

	assert.Contains(t, debugBuf.String(), `"engine":"go"`)
	assert.Contains(t, debugBuf.String(), `"run":{"n":1}`)
	assert.Empty(t, infoBuf.String())
}
