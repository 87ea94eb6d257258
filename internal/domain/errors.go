package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoFieldsProvided = errors.New("no fields provided to update")
	ErrAmbiguousMode    = errors.New("provide only one of delta or quantity")
	ErrMissingMode      = errors.New("provide either delta (change) or quantity (absolute)")
)

type ValidationCode string

const (
	CodeRequired        ValidationCode = "required"
	CodeEmptyName       ValidationCode = "empty_name"
	CodeNameTooLong     ValidationCode = "name_too_long"
	CodeNotNumeric      ValidationCode = "not_numeric"
	CodeNegative        ValidationCode = "negative"
	CodeCategoryTooLong ValidationCode = "category_too_long"
	CodeInvalidID       ValidationCode = "invalid_id"
	CodeUnknownID       ValidationCode = "unknown_id"
	CodeNoFields        ValidationCode = "no_fields"
)

var fieldLabels = map[string]string{
	FieldID:       "Item ID",
	FieldItemName: "Item name",
	FieldQuantity: "Quantity",
	FieldPrice:    "Price",
	FieldCategory: "Category",
	FieldDelta:    "Delta",
}

// ValidationError rejects one field of a request. It never implies a write.
type ValidationError struct {
	Field   string         `json:"field"`
	Code    ValidationCode `json:"code"`
	Message string         `json:"message"`
}

func NewValidationError(field string, code ValidationCode) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    code,
		Message: validationMessage(field, code),
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationMessage(field string, code ValidationCode) string {
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}

	switch code {
	case CodeRequired:
		return label + " is required."
	case CodeEmptyName:
		return label + " cannot be empty."
	case CodeNameTooLong:
		return fmt.Sprintf("%s must be %d characters or fewer.", label, MaxItemNameLength)
	case CodeCategoryTooLong:
		return fmt.Sprintf("%s must be %d characters or fewer.", label, MaxCategoryLength)
	case CodeNotNumeric:
		if field == FieldDelta {
			return label + " must be numeric."
		}
		return label + " must be a number."
	case CodeNegative:
		return label + " must be a non-negative number."
	case CodeInvalidID:
		return "A valid numeric item ID is required."
	case CodeUnknownID:
		return "Item not found for update validation."
	case CodeNoFields:
		return "Provide at least one field to validate for update."
	default:
		return label + " is invalid."
	}
}

// ValidationErrors is the aggregated verdict of a validate-only request.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	return strings.Join(e.Messages(), " ")
}

func (e ValidationErrors) Messages() []string {
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.Message
	}

	return messages
}

// AsValidationError unwraps err into a single field error if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}

	return nil, false
}
