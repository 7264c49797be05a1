package closure

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/slack-go/slack"

	"closurerelay/clients"
	"closurerelay/forms"
	"closurerelay/models"
	"closurerelay/services/users"
)

// CommandStatus is the outcome of routing a slash command
type CommandStatus string

const (
	CommandStatusOpened          CommandStatus = "opened"
	CommandStatusRejectedChannel CommandStatus = "rejected_channel"
	CommandStatusUnknownCommand  CommandStatus = "unknown_command"
)

// CommandResult carries the routing outcome and the user-visible message for
// rejections. Opened results have no message - the modal is the feedback.
type CommandResult struct {
	Status  CommandStatus
	Message string
}

// InteractionResult carries the response for an interaction event.
// FieldErrors, when non-empty, must be surfaced through Slack's inline
// field-error mechanism so the form re-renders with the fields flagged.
type InteractionResult struct {
	FieldErrors map[string]string
}

// ClosureUseCase implements the closure request flows: slash command routing,
// modal submission handling, and button-click acknowledgment
type ClosureUseCase struct {
	slackClient  clients.SlackClient
	usersService users.UsersService
	catalog      *forms.Catalog

	// channelID is the single configured channel: commands are only accepted
	// from it, and all notifications are posted back into it
	channelID string
}

// NewClosureUseCase creates a new closure use case
func NewClosureUseCase(
	slackClient clients.SlackClient,
	usersService users.UsersService,
	catalog *forms.Catalog,
	channelID string,
) *ClosureUseCase {
	return &ClosureUseCase{
		slackClient:  slackClient,
		usersService: usersService,
		catalog:      catalog,
		channelID:    channelID,
	}
}

// ProcessSlashCommand routes an inbound slash command to a form definition
// and opens the corresponding modal. The trigger token expires within
// seconds, so the open-view call is issued synchronously. An error return
// means the open-view call failed and the command should get a server error.
func (uc *ClosureUseCase) ProcessSlashCommand(
	ctx context.Context,
	cmd models.CommandRequest,
) (*CommandResult, error) {
	log.Printf("⚡ Processing slash command %s from user %s in channel %s", cmd.Command, cmd.UserID, cmd.ChannelID)

	if cmd.ChannelID != uc.channelID {
		log.Printf("⏭️ Rejecting command %s from disallowed channel %s", cmd.Command, cmd.ChannelID)
		return &CommandResult{
			Status:  CommandStatusRejectedChannel,
			Message: "❌ This command is only allowed in the designated channel.",
		}, nil
	}

	form, ok := uc.catalog.FormForCommand(cmd.Command)
	if !ok {
		log.Printf("⏭️ Unknown slash command: %s", cmd.Command)
		return &CommandResult{
			Status:  CommandStatusUnknownCommand,
			Message: "Unknown command.",
		}, nil
	}

	view := forms.RenderModal(form, forms.ViewMetadata{ChannelID: cmd.ChannelID})
	if err := uc.slackClient.OpenView(ctx, cmd.TriggerID, view); err != nil {
		return nil, fmt.Errorf("failed to open closure form: %w", err)
	}

	log.Printf("✅ Opened %s modal for user %s", form.CallbackID, cmd.UserID)
	return &CommandResult{Status: CommandStatusOpened}, nil
}

// ProcessInteraction dispatches an interaction event to the submission or
// button-click flow. Unrecognized interaction types are acknowledged with
// empty success and no further action.
func (uc *ClosureUseCase) ProcessInteraction(
	ctx context.Context,
	payload slack.InteractionCallback,
) (*InteractionResult, error) {
	switch payload.Type {
	case slack.InteractionTypeViewSubmission:
		return uc.processViewSubmission(ctx, payload)
	case slack.InteractionTypeBlockActions:
		return uc.processBlockActions(ctx, payload)
	default:
		log.Printf("⏭️ Ignoring unsupported interaction type: %s", payload.Type)
		return &InteractionResult{}, nil
	}
}

func (uc *ClosureUseCase) processViewSubmission(
	ctx context.Context,
	payload slack.InteractionCallback,
) (*InteractionResult, error) {
	kind, ok := models.ClosureKindFromCallbackID(payload.View.CallbackID)
	if !ok {
		log.Printf("⏭️ Ignoring view submission with unrecognized callback ID: %s", payload.View.CallbackID)
		return &InteractionResult{}, nil
	}

	log.Printf("📨 Processing %s submission from user %s", kind, payload.User.ID)

	// Validation runs before any outbound call so that validation errors
	// short-circuit without side effects
	state := extractSubmissionState(payload.View)
	request, fieldErrors := validateSubmission(kind, state)
	if len(fieldErrors) > 0 {
		log.Printf("⏭️ Submission from user %s failed validation: %v", payload.User.ID, fieldErrors)
		return &InteractionResult{FieldErrors: fieldErrors}, nil
	}
	request.UserID = payload.User.ID

	meta, err := forms.ParseViewMetadata(payload.View.PrivateMetadata)
	if err != nil {
		log.Printf("❌ Failed to parse view metadata, continuing without origin context: %v", err)
	} else if meta.ChannelID != "" {
		log.Printf("📋 Submission originated from channel %s", meta.ChannelID)
	}

	submitter := uc.usersService.ResolveSubmitter(ctx, payload.User.ID)
	requestDate := time.Now().UTC().Format("2006-01-02")
	text := composeNotification(request, submitter, requestDate)

	// Posting failure is swallowed: Slack requires a fast acknowledgment of
	// the submission regardless of downstream delivery outcome
	if _, err := uc.slackClient.PostMessage(ctx, uc.channelID, clients.SlackMessageParams{Text: text}); err != nil {
		log.Printf("❌ Failed to post closure notification to channel %s: %v", uc.channelID, err)
		return &InteractionResult{}, nil
	}

	log.Printf("✅ Posted %s notification for store %s to channel %s", kind, request.StoreID, uc.channelID)
	return &InteractionResult{}, nil
}

func (uc *ClosureUseCase) processBlockActions(
	ctx context.Context,
	payload slack.InteractionCallback,
) (*InteractionResult, error) {
	if len(payload.ActionCallback.BlockActions) == 0 {
		log.Printf("⏭️ Ignoring block_actions payload with no actions")
		return &InteractionResult{}, nil
	}

	action := payload.ActionCallback.BlockActions[0]
	if action.ActionID == actionIDSubmittedNoop {
		log.Printf("⏭️ Ignoring click on already-submitted button")
		return &InteractionResult{}, nil
	}

	click := models.ButtonClickEvent{
		ActionID:  action.ActionID,
		Value:     action.Value,
		ChannelID: payload.Channel.ID,
		MessageTS: payload.Message.Timestamp,
		UserID:    payload.User.ID,
	}

	log.Printf("📨 Processing button click %s (value: %s) from user %s", click.ActionID, click.Value, click.UserID)

	// Both outbound calls are best-effort: the interaction is acknowledged
	// with success either way
	summary := composeButtonSummary(click)
	if _, err := uc.slackClient.PostMessage(ctx, uc.channelID, clients.SlackMessageParams{Text: summary}); err != nil {
		log.Printf("❌ Failed to post button click summary to channel %s: %v", uc.channelID, err)
	}

	item := clients.SlackItemRef{Channel: click.ChannelID, Timestamp: click.MessageTS}
	params := clients.SlackMessageParams{
		Text:   summary,
		Blocks: submittedMessageBlocks(click),
	}
	if _, err := uc.slackClient.UpdateMessage(ctx, item, params); err != nil {
		log.Printf("❌ Failed to rewrite clicked message %s in channel %s: %v", click.MessageTS, click.ChannelID, err)
	} else {
		log.Printf("✅ Rewrote clicked button to submitted state on message %s", click.MessageTS)
	}

	return &InteractionResult{}, nil
}
