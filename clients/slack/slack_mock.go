package slack

import (
	"context"

	"github.com/slack-go/slack"

	"closurerelay/clients"
)

// MockSlackClient implements SlackClient interface for testing
type MockSlackClient struct {
	// View operations
	MockOpenView func(ctx context.Context, triggerID string, view slack.ModalViewRequest) error

	// Message operations
	MockPostMessage   func(ctx context.Context, channelID string, params clients.SlackMessageParams) (*clients.SlackPostMessageResponse, error)
	MockUpdateMessage func(ctx context.Context, item clients.SlackItemRef, params clients.SlackMessageParams) (*clients.SlackUpdateMessageResponse, error)

	// User operations
	MockGetUserInfo func(ctx context.Context, userID string) (*clients.SlackUser, error)

	// Call counters for asserting side-effect behavior
	OpenViewCalls      int
	PostMessageCalls   int
	UpdateMessageCalls int
	GetUserInfoCalls   int
}

// NewMockSlackClient creates a new mock Slack client
func NewMockSlackClient() *MockSlackClient {
	return &MockSlackClient{}
}

// OpenView implements SlackClient interface for testing
func (m *MockSlackClient) OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	m.OpenViewCalls++
	if m.MockOpenView != nil {
		return m.MockOpenView(ctx, triggerID, view)
	}

	// Default success
	return nil
}

// PostMessage implements SlackClient interface for testing
func (m *MockSlackClient) PostMessage(
	ctx context.Context,
	channelID string,
	params clients.SlackMessageParams,
) (*clients.SlackPostMessageResponse, error) {
	m.PostMessageCalls++
	if m.MockPostMessage != nil {
		return m.MockPostMessage(ctx, channelID, params)
	}

	// Default mock response
	return &clients.SlackPostMessageResponse{
		Channel:   channelID,
		Timestamp: "1234567890.123456",
	}, nil
}

// UpdateMessage implements SlackClient interface for testing
func (m *MockSlackClient) UpdateMessage(
	ctx context.Context,
	item clients.SlackItemRef,
	params clients.SlackMessageParams,
) (*clients.SlackUpdateMessageResponse, error) {
	m.UpdateMessageCalls++
	if m.MockUpdateMessage != nil {
		return m.MockUpdateMessage(ctx, item, params)
	}

	// Default mock response
	return &clients.SlackUpdateMessageResponse{
		Channel:   item.Channel,
		Timestamp: item.Timestamp,
	}, nil
}

// GetUserInfo implements SlackClient interface for testing
func (m *MockSlackClient) GetUserInfo(ctx context.Context, userID string) (*clients.SlackUser, error) {
	m.GetUserInfoCalls++
	if m.MockGetUserInfo != nil {
		return m.MockGetUserInfo(ctx, userID)
	}

	// Default mock response
	return &clients.SlackUser{
		ID:   userID,
		Name: "testuser",
		Profile: clients.SlackUserProfile{
			DisplayName: "Test User",
			RealName:    "Test User",
			Email:       "test.user@example.com",
		},
	}, nil
}
