package desk

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// TicketInput holds the ticket creation form values. The owning client is
// never part of the input.
type TicketInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Validate will run validation rules. Category is mandatory and must be one
// of categories.
func (i TicketInput) Validate(categories []Category) error {
	allowed := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		allowed = append(allowed, c)
	}

	return validation.ValidateStruct(&i,
		validation.Field(
			&i.Category,
			validation.Required.Error(MsgCategoryRequired),
			validation.In(allowed...).Error(MsgCategoryInvalid),
		),
	)
}

func (i TicketInput) payload() NewTicket {
	return NewTicket{
		Title:       i.Title,
		Description: i.Description,
		Category:    i.Category,
		ClientID:    0,
	}
}

// validationMessage returns the field message without the field prefix
func validationMessage(err error) string {
	if errs, ok := err.(validation.Errors); ok {
		if fieldErr := errs["category"]; fieldErr != nil {
			return fieldErr.Error()
		}
	}
	return err.Error()
}
