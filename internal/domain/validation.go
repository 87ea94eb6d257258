package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// numericPattern accepts an optional sign, digits with an optional fraction and
// an optional exponent. The lookahead requires a digit before or right after
// the dot, so "." and "+e3" are rejected.
const numericPattern = `^[+-]?(?=\.?\d)\d*(?:\.\d*)?(?:[eE][+-]?\d+)?$`

var numericExp = newNumericExp()

func newNumericExp() *regexp2.Regexp {
	re := regexp2.MustCompile(numericPattern, regexp2.None)
	re.MatchTimeout = 100 * time.Millisecond

	return re
}

var errOutOfRange = errors.New("value out of range")

// IsNumeric reports whether s, already trimmed, is a numeric string.
func IsNumeric(s string) bool {
	ok, err := numericExp.MatchString(s)

	return err == nil && ok
}

var (
	numeric     = validation.NewStringRule(IsNumeric, "must be a number")
	nonNegative = validation.Min(0.0)
)

// check runs ozzo rules against value and reports a failure as code on field.
func check(field string, code ValidationCode, value interface{}, rules ...validation.Rule) *ValidationError {
	if err := validation.Validate(value, rules...); err != nil {
		return NewValidationError(field, code)
	}

	return nil
}

func ValidateItemName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if err := check(FieldItemName, CodeEmptyName, name, validation.Required); err != nil {
		return "", err
	}
	if err := check(FieldItemName, CodeNameTooLong, name, validation.RuneLength(0, MaxItemNameLength)); err != nil {
		return "", err
	}

	return name, nil
}

func ValidateCategory(raw string) (string, error) {
	category := strings.TrimSpace(raw)
	if err := check(FieldCategory, CodeCategoryTooLong, category, validation.RuneLength(0, MaxCategoryLength)); err != nil {
		return "", err
	}

	return category, nil
}

// ValidateQuantity accepts a non-negative number and truncates it to an integer.
func ValidateQuantity(raw string) (int, error) {
	return nonNegativeInt(FieldQuantity, raw)
}

// ValidateDelta accepts any number, negative included, truncated to an integer.
func ValidateDelta(raw string) (int, error) {
	value, _, err := parseInt(FieldDelta, raw)
	if err != nil {
		return 0, err
	}

	return value, nil
}

func ValidatePrice(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if err := check(FieldPrice, CodeNotNumeric, s, validation.Required, numeric); err != nil {
		return 0, err
	}

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, NewValidationError(FieldPrice, CodeNotNumeric)
	}
	if err := check(FieldPrice, CodeNegative, price, nonNegative); err != nil {
		return 0, err
	}

	return price, nil
}

func nonNegativeInt(field, raw string) (int, error) {
	value, exact, err := parseInt(field, raw)
	if err != nil {
		return 0, err
	}
	// The sign is judged on the number as written, so "-0.5" is negative
	// even though it truncates to zero.
	if err := check(field, CodeNegative, exact, nonNegative); err != nil {
		return 0, err
	}

	return value, nil
}

// parseInt parses a numeric string into its integer part. It also returns the
// untruncated value.
func parseInt(field, raw string) (int, float64, error) {
	s := strings.TrimSpace(raw)
	if err := check(field, CodeNotNumeric, s, validation.Required, numeric); err != nil {
		return 0, 0, err
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(n), float64(n), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, NewValidationError(field, CodeNotNumeric)
	}
	n, err := truncate(f)
	if err != nil {
		return 0, 0, NewValidationError(field, CodeNotNumeric)
	}

	return n, f, nil
}

func truncate(f float64) (int, error) {
	t := math.Trunc(f)
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return 0, errOutOfRange
	}

	return int(t), nil
}
