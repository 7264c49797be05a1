package forms

import "closurerelay/models"

// Slash commands recognized by the relay
const (
	CommandTemporaryClosure = "/temporaryclosure"
	CommandPermanentClosure = "/permanentclosure"
)

// Block and action IDs for the closure form fields
const (
	BlockIDStoreID       = "store_id_input"
	BlockIDReason        = "reason_input"
	BlockIDReopeningDate = "reopening_date_input"

	ActionIDStoreID       = "store_id"
	ActionIDReason        = "closure_reason"
	ActionIDReopeningDate = "reopening_date"
)

// ReasonOptions is the fixed closure reason catalog. The order is part of the
// form contract and the machine values end up verbatim in notification text.
var ReasonOptions = []models.SelectOption{
	{Label: "Operational Issues", Value: "operational_issues"},
	{Label: "Contract Expired", Value: "contract_expired"},
	{Label: "Store Physically Closed", Value: "store_physically_closed"},
	{Label: "Logistical Decision", Value: "logistical_decision"},
	{Label: "Finance Concerns", Value: "finance_concerns"},
	{Label: "Public Holiday", Value: "public_holiday"},
}

// Catalog holds the immutable form definitions for every supported slash
// command, built once at process start
type Catalog struct {
	byCommand    map[string]models.FormDefinition
	byCallbackID map[string]models.FormDefinition
}

// NewCatalog builds the closure form catalog
func NewCatalog() *Catalog {
	storeIDField := models.FieldSpec{
		BlockID:     BlockIDStoreID,
		ActionID:    ActionIDStoreID,
		Label:       "Store ID:",
		Placeholder: "Enter store ID as a number",
		Kind:        models.FieldKindText,
		Required:    true,
	}

	reasonField := models.FieldSpec{
		BlockID:     BlockIDReason,
		ActionID:    ActionIDReason,
		Label:       "Closure Reason:",
		Placeholder: "Select a closure reason",
		Kind:        models.FieldKindSelect,
		Options:     ReasonOptions,
		Required:    true,
	}

	reopeningDateField := models.FieldSpec{
		BlockID:     BlockIDReopeningDate,
		ActionID:    ActionIDReopeningDate,
		Label:       "Store Reopening Date:",
		Placeholder: "Select reopening date",
		Kind:        models.FieldKindDatePicker,
		Required:    true,
	}

	temporaryForm := models.FormDefinition{
		CallbackID: string(models.ClosureKindTemporary),
		Title:      "Temporary Closure",
		Fields:     []models.FieldSpec{storeIDField, reasonField, reopeningDateField},
	}

	permanentForm := models.FormDefinition{
		CallbackID: string(models.ClosureKindPermanent),
		Title:      "Permanent Closure",
		Fields:     []models.FieldSpec{storeIDField, reasonField},
	}

	return &Catalog{
		byCommand: map[string]models.FormDefinition{
			CommandTemporaryClosure: temporaryForm,
			CommandPermanentClosure: permanentForm,
		},
		byCallbackID: map[string]models.FormDefinition{
			temporaryForm.CallbackID: temporaryForm,
			permanentForm.CallbackID: permanentForm,
		},
	}
}

// FormForCommand returns the form definition for a slash command.
// Returns false for unrecognized commands.
func (c *Catalog) FormForCommand(command string) (models.FormDefinition, bool) {
	def, ok := c.byCommand[command]
	return def, ok
}

// FormForCallbackID returns the form definition for a view callback ID.
// Returns false for callback IDs that don't belong to the catalog.
func (c *Catalog) FormForCallbackID(callbackID string) (models.FormDefinition, bool) {
	def, ok := c.byCallbackID[callbackID]
	return def, ok
}
