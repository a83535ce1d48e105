package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// DefaultSlackChannel is used when no channel is configured.
const DefaultSlackChannel = "#benchmarks"

// SlackNotifier posts messages to a Slack channel through the Web API.
type SlackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlackNotifier creates a notifier authenticated with a bot token.
func NewSlackNotifier(token, channel string, opts ...slack.Option) *SlackNotifier {
	if channel == "" {
		channel = DefaultSlackChannel
	}
	return &SlackNotifier{
		client:  slack.New(token, opts...),
		channel: channel,
	}
}

// Notify posts message to the configured channel.
func (s *SlackNotifier) Notify(ctx context.Context, message string) error {
	_, _, err := s.client.PostMessageContext(ctx, s.channel, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	return nil
}
