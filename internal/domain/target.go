package domain

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
)

// ParseItemID accepts a positive decimal integer, surrounding whitespace allowed.
func ParseItemID(raw string) (uint, error) {
	s := strings.TrimSpace(raw)
	if err := check(FieldID, CodeInvalidID, s, validation.Required, is.Digit); err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, NewValidationError(FieldID, CodeInvalidID)
	}

	return uint(id), nil
}

// ValidationTarget says what a validate-only request is checked as: an update
// when an id was supplied, a create otherwise.
type ValidationTarget struct {
	Operation Operation
	ID        uint
}

// ParseValidationTarget returns the target and, for an unusable id, the error
// to report. The operation is update in that case all the same.
func ParseValidationTarget(rawID *string) (ValidationTarget, error) {
	if rawID == nil || strings.TrimSpace(*rawID) == "" {
		return ValidationTarget{Operation: OperationCreate}, nil
	}

	id, err := ParseItemID(*rawID)
	if err != nil {
		return ValidationTarget{Operation: OperationUpdate}, err
	}

	return ValidationTarget{Operation: OperationUpdate, ID: id}, nil
}
