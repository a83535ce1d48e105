package notify

import (
	"context"
	"fmt"
	"log/slog"

	"regexbench/internal/benchmark"
	"regexbench/internal/config"
)

// Notifier delivers a one-line message.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Manager fans run notifications out to every configured notifier. Delivery
// failures are logged and never returned: a finished benchmark run must not
// fail because a chat service is unreachable.
type Manager struct {
	notifiers []Notifier
	logger    *slog.Logger
}

// NewManager builds a Manager from the Slack settings. With Slack disabled,
// or enabled without a token, the manager has no notifiers.
func NewManager(settings config.SlackSettings, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{logger: logger}

	if !settings.Enabled {
		return m
	}
	if settings.Token == "" {
		logger.Warn("slack notifications enabled but token not set", "env", config.SlackTokenEnv)
		return m
	}
	m.Add(NewSlackNotifier(settings.Token, settings.Channel))
	return m
}

// Add registers an extra notifier.
func (m *Manager) Add(n Notifier) {
	m.notifiers = append(m.notifiers, n)
}

// Enabled reports whether any notifier is configured.
func (m *Manager) Enabled() bool {
	return len(m.notifiers) > 0
}

// RunCompleted announces an exported result set.
func (m *Manager) RunCompleted(ctx context.Context, rs benchmark.ResultSet, path string) {
	msg := Summary(rs, path)
	for _, n := range m.notifiers {
		if err := n.Notify(ctx, msg); err != nil {
			m.logger.Warn("failed to send run notification", "error", err)
		}
	}
}

// Summary renders the one-line announcement for rs.
func Summary(rs benchmark.ResultSet, path string) string {
	msg := fmt.Sprintf("regexbench %s: %d scenarios measured", rs.Engine, len(rs.Results))

	slowest, worst := "", -1.0
	for _, name := range rs.Names() {
		if ms := rs.Results[name].TimeMs; ms > worst {
			slowest, worst = name, ms
		}
	}
	if slowest != "" {
		msg += fmt.Sprintf(", slowest %s (%.6f ms)", slowest, worst)
	}
	if path != "" {
		msg += ", results at " + path
	}
	return msg
}
