package clients

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for the outbound Slack API calls this
// relay makes. All calls are authenticated with the bot token configured at
// process start.
type SlackClient interface {
	// OpenView opens a modal view using a short-lived trigger ID. The trigger
	// expires within seconds, so this must be called synchronously while
	// handling the originating command.
	OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error

	// PostMessage sends a message to a Slack channel
	PostMessage(ctx context.Context, channelID string, params SlackMessageParams) (*SlackPostMessageResponse, error)

	// UpdateMessage edits an existing message in place
	UpdateMessage(ctx context.Context, item SlackItemRef, params SlackMessageParams) (*SlackUpdateMessageResponse, error)

	// GetUserInfo gets information about a Slack user
	GetUserInfo(ctx context.Context, userID string) (*SlackUser, error)
}
