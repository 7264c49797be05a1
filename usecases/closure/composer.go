package closure

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"closurerelay/models"
)

// actionIDSubmittedNoop is the action ID assigned to the rewritten button.
// Clicks on it are ignored by the dispatcher, which makes the "Submitted"
// state behaviorally inert. Advisory only: two clicks racing the rewrite can
// both be processed.
const actionIDSubmittedNoop = "task_submitted"

// composeNotification builds the closure notification text. Bullet order is
// fixed and the reason is the machine value, not the display label.
func composeNotification(
	request *models.ClosureRequest,
	submitter models.SubmitterIdentity,
	requestDate string,
) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", request.Kind.Header())
	fmt.Fprintf(&b, "• Store ID: %s\n", request.StoreID)
	fmt.Fprintf(&b, "• Closure Reason: %s\n", request.ReasonCode)
	if date, ok := request.ReopeningDate.Get(); ok {
		fmt.Fprintf(&b, "• Store Reopening Date: %s\n", date)
	}
	fmt.Fprintf(&b, "• Request Date: %s\n", requestDate)
	fmt.Fprintf(&b, "• Requested By: %s (%s)", submitter.Reference, submitter.Email)
	return b.String()
}

// composeButtonSummary builds the acknowledgment line posted when a button
// is clicked
func composeButtonSummary(click models.ButtonClickEvent) string {
	return fmt.Sprintf("✅ Task Completed: %s by <@%s> at %s", click.Value, click.UserID, click.MessageTS)
}

// submittedMessageBlocks builds the replacement blocks for the clicked
// message: the summary line plus the button relabeled "Submitted" under a
// no-op action ID, since Block Kit has no disabled attribute.
func submittedMessageBlocks(click models.ButtonClickEvent) []slack.Block {
	summary := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, composeButtonSummary(click), false, false),
		nil,
		nil,
	)

	submitted := slack.NewButtonBlockElement(
		actionIDSubmittedNoop,
		click.Value,
		slack.NewTextBlockObject(slack.PlainTextType, "Submitted", false, false),
	)
	actions := slack.NewActionBlock("", submitted)

	return []slack.Block{summary, actions}
}
