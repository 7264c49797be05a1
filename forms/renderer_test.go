package forms

import (
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closurerelay/models"
)

func TestRenderModal(t *testing.T) {
	catalog := NewCatalog()

	t.Run("temporary_closure_modal_has_three_input_blocks_in_order", func(t *testing.T) {
		form, ok := catalog.FormForCommand(CommandTemporaryClosure)
		require.True(t, ok)

		view := RenderModal(form, ViewMetadata{ChannelID: "C08DT4RE96K"})

		assert.Equal(t, slack.VTModal, view.Type)
		assert.Equal(t, "temp_closure", view.CallbackID)
		assert.Equal(t, "Temporary Closure", view.Title.Text)
		assert.Equal(t, "Submit", view.Submit.Text)

		require.Len(t, view.Blocks.BlockSet, 3)

		storeBlock, ok := view.Blocks.BlockSet[0].(*slack.InputBlock)
		require.True(t, ok)
		assert.Equal(t, BlockIDStoreID, storeBlock.BlockID)
		textElement, ok := storeBlock.Element.(*slack.PlainTextInputBlockElement)
		require.True(t, ok)
		assert.Equal(t, ActionIDStoreID, textElement.ActionID)

		reasonBlock, ok := view.Blocks.BlockSet[1].(*slack.InputBlock)
		require.True(t, ok)
		assert.Equal(t, BlockIDReason, reasonBlock.BlockID)

		dateBlock, ok := view.Blocks.BlockSet[2].(*slack.InputBlock)
		require.True(t, ok)
		assert.Equal(t, BlockIDReopeningDate, dateBlock.BlockID)
		dateElement, ok := dateBlock.Element.(*slack.DatePickerBlockElement)
		require.True(t, ok)
		assert.Equal(t, ActionIDReopeningDate, dateElement.ActionID)
	})

	t.Run("permanent_closure_modal_has_two_input_blocks", func(t *testing.T) {
		form, ok := catalog.FormForCommand(CommandPermanentClosure)
		require.True(t, ok)

		view := RenderModal(form, ViewMetadata{ChannelID: "C08DT4RE96K"})

		assert.Equal(t, "perm_closure", view.CallbackID)
		assert.Len(t, view.Blocks.BlockSet, 2)
	})

	t.Run("select_carries_full_reason_catalog", func(t *testing.T) {
		form, ok := catalog.FormForCommand(CommandTemporaryClosure)
		require.True(t, ok)

		view := RenderModal(form, ViewMetadata{})

		reasonBlock, ok := view.Blocks.BlockSet[1].(*slack.InputBlock)
		require.True(t, ok)
		selectElement, ok := reasonBlock.Element.(*slack.SelectBlockElement)
		require.True(t, ok)
		assert.Equal(t, ActionIDReason, selectElement.ActionID)
		require.Len(t, selectElement.Options, len(ReasonOptions))
		for i, opt := range selectElement.Options {
			assert.Equal(t, ReasonOptions[i].Value, opt.Value)
			assert.Equal(t, ReasonOptions[i].Label, opt.Text.Text)
		}
	})

	t.Run("metadata_roundtrip", func(t *testing.T) {
		form, ok := catalog.FormForCommand(CommandTemporaryClosure)
		require.True(t, ok)

		view := RenderModal(form, ViewMetadata{ChannelID: "C123456"})
		require.NotEmpty(t, view.PrivateMetadata)

		meta, err := ParseViewMetadata(view.PrivateMetadata)
		require.NoError(t, err)
		assert.Equal(t, "C123456", meta.ChannelID)
	})

	t.Run("required_fields_are_not_optional", func(t *testing.T) {
		form, ok := catalog.FormForCommand(CommandTemporaryClosure)
		require.True(t, ok)

		view := RenderModal(form, ViewMetadata{})
		for _, block := range view.Blocks.BlockSet {
			inputBlock, ok := block.(*slack.InputBlock)
			require.True(t, ok)
			assert.False(t, inputBlock.Optional)
		}
	})
}

func TestParseViewMetadata(t *testing.T) {
	t.Run("empty_metadata_yields_zero_value", func(t *testing.T) {
		meta, err := ParseViewMetadata("")
		require.NoError(t, err)
		assert.Equal(t, ViewMetadata{}, meta)
	})

	t.Run("malformed_metadata_returns_error", func(t *testing.T) {
		_, err := ParseViewMetadata("{not json")
		assert.Error(t, err)
	})
}

func TestRenderInputBlockKinds(t *testing.T) {
	field := models.FieldSpec{
		BlockID:     "some_block",
		ActionID:    "some_action",
		Label:       "Some Label:",
		Placeholder: "Pick one",
		Kind:        models.FieldKindSelect,
		Options:     []models.SelectOption{{Label: "A", Value: "a"}},
		Required:    true,
	}

	block := renderInputBlock(field)
	assert.Equal(t, "some_block", block.BlockID)
	assert.Equal(t, "Some Label:", block.Label.Text)
	assert.False(t, block.Optional)

	field.Required = false
	block = renderInputBlock(field)
	assert.True(t, block.Optional)
}
