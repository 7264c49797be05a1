package closure

import (
	"regexp"

	"github.com/samber/mo"
	"github.com/slack-go/slack"

	"closurerelay/forms"
	"closurerelay/models"
)

var storeIDPattern = regexp.MustCompile(`^\d+$`)

// extractSubmissionState flattens Slack's state.values[blockID][actionID]
// nesting into a block ID -> raw value map. Selects contribute the option's
// machine value, date pickers the selected ISO date, text inputs the raw text.
func extractSubmissionState(view slack.View) models.SubmissionState {
	state := models.SubmissionState{}
	if view.State == nil {
		return state
	}

	for blockID, actions := range view.State.Values {
		for _, action := range actions {
			switch {
			case action.SelectedOption.Value != "":
				state[blockID] = action.SelectedOption.Value
			case action.SelectedDate != "":
				state[blockID] = action.SelectedDate
			default:
				state[blockID] = action.Value
			}
		}
	}

	return state
}

// validateSubmission turns a submission state into a validated closure
// request, or a block-scoped error map for Slack's inline error mechanism.
// The store ID digits-only rule is the only validation rule; other fields
// are accepted as-is.
func validateSubmission(
	kind models.ClosureKind,
	state models.SubmissionState,
) (*models.ClosureRequest, map[string]string) {
	storeID := state[forms.BlockIDStoreID]
	if !storeIDPattern.MatchString(storeID) {
		return nil, map[string]string{
			forms.BlockIDStoreID: "Store ID must be a number.",
		}
	}

	request := &models.ClosureRequest{
		Kind:          kind,
		StoreID:       storeID,
		ReasonCode:    state[forms.BlockIDReason],
		ReopeningDate: mo.None[string](),
	}

	if kind == models.ClosureKindTemporary {
		request.ReopeningDate = mo.Some(state[forms.BlockIDReopeningDate])
	}

	return request, nil
}
