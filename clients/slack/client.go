package slack

import (
	"context"

	"github.com/slack-go/slack"

	"closurerelay/clients"
)

// SlackClient implements the clients.SlackClient interface using the slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided bot token
func NewSlackClient(authToken string) clients.SlackClient {
	return &SlackClient{
		Client: slack.New(authToken),
	}
}

// OpenView opens a modal view using the given trigger ID
func (c *SlackClient) OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	_, err := c.Client.OpenViewContext(ctx, triggerID, view)
	return err
}

// PostMessage sends a message to a Slack channel
func (c *SlackClient) PostMessage(
	ctx context.Context,
	channelID string,
	params clients.SlackMessageParams,
) (*clients.SlackPostMessageResponse, error) {
	channel, timestamp, err := c.Client.PostMessageContext(ctx, channelID, messageOptions(params)...)
	if err != nil {
		return nil, err
	}

	return &clients.SlackPostMessageResponse{
		Channel:   channel,
		Timestamp: timestamp,
	}, nil
}

// UpdateMessage edits an existing message in place
func (c *SlackClient) UpdateMessage(
	ctx context.Context,
	item clients.SlackItemRef,
	params clients.SlackMessageParams,
) (*clients.SlackUpdateMessageResponse, error) {
	channel, timestamp, _, err := c.Client.UpdateMessageContext(ctx, item.Channel, item.Timestamp, messageOptions(params)...)
	if err != nil {
		return nil, err
	}

	return &clients.SlackUpdateMessageResponse{
		Channel:   channel,
		Timestamp: timestamp,
	}, nil
}

// GetUserInfo gets information about a Slack user
func (c *SlackClient) GetUserInfo(ctx context.Context, userID string) (*clients.SlackUser, error) {
	user, err := c.Client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &clients.SlackUser{
		ID:   user.ID,
		Name: user.Name,
		Profile: clients.SlackUserProfile{
			DisplayName: user.Profile.DisplayName,
			RealName:    user.Profile.RealName,
			Email:       user.Profile.Email,
		},
	}, nil
}

// messageOptions converts our message params to SDK options
func messageOptions(params clients.SlackMessageParams) []slack.MsgOption {
	var sdkOptions []slack.MsgOption
	if params.Text != "" {
		sdkOptions = append(sdkOptions, slack.MsgOptionText(params.Text, false))
	}
	if len(params.Blocks) > 0 {
		sdkOptions = append(sdkOptions, slack.MsgOptionBlocks(params.Blocks...))
	}
	return sdkOptions
}
