package testutils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateSlackChannelID generates a unique Slack-shaped channel ID for testing
func GenerateSlackChannelID() string {
	return "C" + randomSlackSuffix()
}

// GenerateSlackUserID generates a unique Slack-shaped user ID for testing
func GenerateSlackUserID() string {
	return "U" + randomSlackSuffix()
}

// GenerateTriggerID generates a Slack-shaped trigger ID for testing
func GenerateTriggerID() string {
	return fmt.Sprintf("%d.%d.%s", rand.Int63n(1e12), rand.Int63n(1e12), uuid.New().String()[:16])
}

// GenerateMessageTS generates a Slack-shaped message timestamp for testing
func GenerateMessageTS() string {
	return fmt.Sprintf("%d.%06d", time.Now().Unix(), rand.Intn(1e6))
}

func randomSlackSuffix() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
}
