package clients

import "github.com/slack-go/slack"

// SlackMessageParams holds parameters for sending or updating Slack messages.
// Text is always set; Blocks are optional and take visual precedence when
// present, with Text serving as the notification fallback.
type SlackMessageParams struct {
	Text   string
	Blocks []slack.Block
}

// SlackPostMessageResponse represents the response from posting a message to Slack
type SlackPostMessageResponse struct {
	Channel   string
	Timestamp string
}

// SlackUpdateMessageResponse represents the response from updating a Slack message
type SlackUpdateMessageResponse struct {
	Channel   string
	Timestamp string
}

// SlackItemRef represents a reference to a Slack message item
type SlackItemRef struct {
	Channel   string
	Timestamp string
}

// SlackUser represents a Slack user
type SlackUser struct {
	ID      string
	Name    string
	Profile SlackUserProfile
}

// SlackUserProfile represents a Slack user's profile information
type SlackUserProfile struct {
	DisplayName string
	RealName    string
	Email       string
}
