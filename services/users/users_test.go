package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"closurerelay/clients"
	slackclient "closurerelay/clients/slack"
	"closurerelay/testutils"
)

func TestResolveSubmitter(t *testing.T) {
	t.Run("resolves_email_from_profile", func(t *testing.T) {
		mockClient := slackclient.NewMockSlackClient()
		userID := testutils.GenerateSlackUserID()
		mockClient.MockGetUserInfo = func(ctx context.Context, id string) (*clients.SlackUser, error) {
			return &clients.SlackUser{
				ID: id,
				Profile: clients.SlackUserProfile{
					DisplayName: "Jane Doe",
					Email:       "jane.doe@example.com",
				},
			}, nil
		}

		service := NewSlackUsersService(mockClient)
		identity := service.ResolveSubmitter(context.Background(), userID)

		assert.Equal(t, "<@"+userID+">", identity.Reference)
		assert.Equal(t, "jane.doe@example.com", identity.Email)
	})

	t.Run("lookup_failure_degrades_to_placeholder", func(t *testing.T) {
		mockClient := slackclient.NewMockSlackClient()
		mockClient.MockGetUserInfo = func(ctx context.Context, id string) (*clients.SlackUser, error) {
			return nil, fmt.Errorf("network error")
		}

		service := NewSlackUsersService(mockClient)
		userID := testutils.GenerateSlackUserID()
		identity := service.ResolveSubmitter(context.Background(), userID)

		assert.Equal(t, "<@"+userID+">", identity.Reference)
		assert.Equal(t, EmailUnavailable, identity.Email)
	})

	t.Run("profile_without_email_degrades_to_placeholder", func(t *testing.T) {
		mockClient := slackclient.NewMockSlackClient()
		mockClient.MockGetUserInfo = func(ctx context.Context, id string) (*clients.SlackUser, error) {
			return &clients.SlackUser{ID: id}, nil
		}

		service := NewSlackUsersService(mockClient)
		identity := service.ResolveSubmitter(context.Background(), testutils.GenerateSlackUserID())

		assert.Equal(t, EmailUnavailable, identity.Email)
	})
}
