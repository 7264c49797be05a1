package users

import (
	"context"
	"fmt"
	"log"
	"time"

	"closurerelay/clients"
	"closurerelay/models"
)

// EmailUnavailable is the placeholder substituted when the profile lookup
// fails or the profile carries no email
const EmailUnavailable = "Unavailable"

// UsersService resolves the identity of a submitting user
type UsersService interface {
	// ResolveSubmitter looks up the user's profile and returns an enriched
	// identity. The lookup is best-effort: any failure degrades to placeholder
	// values instead of returning an error.
	ResolveSubmitter(ctx context.Context, userID string) models.SubmitterIdentity
}

// SlackUsersService implements UsersService against the Slack users.info API
type SlackUsersService struct {
	slackClient   clients.SlackClient
	lookupTimeout time.Duration
}

// NewSlackUsersService creates a new users service backed by the Slack API
func NewSlackUsersService(slackClient clients.SlackClient) *SlackUsersService {
	return &SlackUsersService{
		slackClient: slackClient,
		// Slack expects an interaction acknowledgment within ~3 seconds, so
		// the enrichment call gets strictly less than that
		lookupTimeout: 2 * time.Second,
	}
}

func (s *SlackUsersService) ResolveSubmitter(ctx context.Context, userID string) models.SubmitterIdentity {
	log.Printf("📋 Starting to resolve submitter identity for user: %s", userID)

	// Fallback identity: raw mention reference with a placeholder email
	identity := models.SubmitterIdentity{
		Reference: fmt.Sprintf("<@%s>", userID),
		Email:     EmailUnavailable,
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	user, err := s.slackClient.GetUserInfo(lookupCtx, userID)
	if err != nil {
		log.Printf("❌ Failed to look up user %s, falling back to placeholder identity: %v", userID, err)
		return identity
	}

	if user.Profile.Email != "" {
		identity.Email = user.Profile.Email
	}

	log.Printf("📋 Completed successfully - resolved submitter identity for user: %s", userID)
	return identity
}
