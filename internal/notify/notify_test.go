package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regexbench/internal/benchmark"
	"regexbench/internal/config"
)

type recordingNotifier struct {
	messages []string
	err      error
}

func (r *recordingNotifier) Notify(_ context.Context, message string) error {
	r.messages = append(r.messages, message)
	return r.err
}

func sampleResultSet() benchmark.ResultSet {
	return benchmark.ResultSet{
		Engine:    "go",
		Timestamp: "2026-01-01T00:00:00Z",
		Results: map[string]benchmark.Measurement{
			"anchor_start":          benchmark.NewMeasurement(50, 1000),
			"required_literal_long": benchmark.NewMeasurement(2_500_000, 40),
		},
	}
}

func TestSummary(t *testing.T) {
	msg := Summary(sampleResultSet(), "benchmarks/results/go_results.json")
	assert.Equal(t,
		"regexbench go: 2 scenarios measured, slowest required_literal_long (2.500000 ms), results at benchmarks/results/go_results.json",
		msg)

	empty := Summary(benchmark.ResultSet{Engine: "regexp2"}, "")
	assert.Equal(t, "regexbench regexp2: 0 scenarios measured", empty)
}

func TestSlackNotifier_PostsToChannel(t *testing.T) {
	var channel, text string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat.postMessage", r.URL.Path)
		require.NoError(t, r.ParseForm())
		channel = r.FormValue("channel")
		text = r.FormValue("text")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1700000000.000100"}`))
	}))
	defer server.Close()

	n := NewSlackNotifier("xoxb-test", "", slack.OptionAPIURL(server.URL+"/"))
	require.NoError(t, n.Notify(context.Background(), "hello"))

	assert.Equal(t, DefaultSlackChannel, channel)
	assert.Equal(t, "hello", text)
}

func TestSlackNotifier_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer server.Close()

	n := NewSlackNotifier("xoxb-test", "#missing", slack.OptionAPIURL(server.URL+"/"))
	err := n.Notify(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}

func TestNewManager(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	assert.False(t, NewManager(config.SlackSettings{}, logger).Enabled())

	noToken := NewManager(config.SlackSettings{Enabled: true, Channel: "#x"}, logger)
	assert.False(t, noToken.Enabled())
	assert.Contains(t, logs.String(), "token not set")

	assert.True(t, NewManager(config.SlackSettings{Enabled: true, Token: "xoxb"}, logger).Enabled())
}

func TestManager_RunCompletedNeverFails(t *testing.T) {
	var logs bytes.Buffer
	m := NewManager(config.SlackSettings{}, slog.New(slog.NewTextHandler(&logs, nil)))

	ok := &recordingNotifier{}
	broken := &recordingNotifier{err: errors.New("unreachable")}
	m.Add(broken)
	m.Add(ok)

	m.RunCompleted(context.Background(), sampleResultSet(), "out.json")

	require.Len(t, ok.messages, 1)
	assert.Contains(t, ok.messages[0], "2 scenarios measured")
	assert.Len(t, broken.messages, 1)
	assert.Contains(t, logs.String(), "unreachable")
}
