package forms

import (
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"

	"closurerelay/models"
)

// ViewMetadata is the contextual data embedded in a view's private_metadata
// field. Slack echoes it back verbatim on submission, which is the only way
// to recover the originating channel at that point.
type ViewMetadata struct {
	ChannelID string `json:"channel_id"`
}

// RenderModal serializes a form definition plus contextual metadata into
// Slack's modal view description. Pure transformation, no I/O.
func RenderModal(def models.FormDefinition, meta ViewMetadata) slack.ModalViewRequest {
	blocks := make([]slack.Block, 0, len(def.Fields))
	for _, field := range def.Fields {
		blocks = append(blocks, renderInputBlock(field))
	}

	// Marshalling a flat struct of strings cannot fail
	metaBytes, _ := json.Marshal(meta)

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      def.CallbackID,
		Title:           newPlainText(def.Title),
		Submit:          newPlainText("Submit"),
		PrivateMetadata: string(metaBytes),
		Blocks: slack.Blocks{
			BlockSet: blocks,
		},
	}
}

// ParseViewMetadata decodes the opaque private_metadata embedded by RenderModal
func ParseViewMetadata(raw string) (ViewMetadata, error) {
	var meta ViewMetadata
	if raw == "" {
		return meta, nil
	}
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return ViewMetadata{}, fmt.Errorf("failed to parse view metadata: %w", err)
	}
	return meta, nil
}

// renderInputBlock builds the input block for a single field spec
func renderInputBlock(field models.FieldSpec) *slack.InputBlock {
	var element slack.BlockElement

	switch field.Kind {
	case models.FieldKindSelect:
		options := make([]*slack.OptionBlockObject, 0, len(field.Options))
		for _, opt := range field.Options {
			options = append(options, slack.NewOptionBlockObject(opt.Value, newPlainText(opt.Label), nil))
		}
		element = slack.NewOptionsSelectBlockElement(
			slack.OptTypeStatic,
			newPlainText(field.Placeholder),
			field.ActionID,
			options...,
		)
	case models.FieldKindDatePicker:
		picker := slack.NewDatePickerBlockElement(field.ActionID)
		picker.Placeholder = newPlainText(field.Placeholder)
		element = picker
	default:
		element = slack.NewPlainTextInputBlockElement(newPlainText(field.Placeholder), field.ActionID)
	}

	block := slack.NewInputBlock(field.BlockID, newPlainText(field.Label), nil, element)
	block.Optional = !field.Required
	return block
}

// newPlainText creates a plain_text block object for labels and placeholders
func newPlainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}
