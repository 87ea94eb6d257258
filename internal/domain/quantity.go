package domain

import "math"

type QuantityMode string

const (
	QuantityModeSet   QuantityMode = "set"
	QuantityModeDelta QuantityMode = "delta"
)

// QuantityAdjustment is either an absolute quantity (set) or a relative change
// (delta). Raw keeps the input as received for the response.
type QuantityAdjustment struct {
	Mode  QuantityMode
	Value int
	Raw   string
}

// ParseQuantityAdjustment picks the mode from which input is present. Exactly
// one of quantity and delta must be supplied.
func ParseQuantityAdjustment(quantity, delta *string) (QuantityAdjustment, error) {
	switch {
	case quantity != nil && delta != nil:
		return QuantityAdjustment{}, ErrAmbiguousMode
	case quantity == nil && delta == nil:
		return QuantityAdjustment{}, ErrMissingMode
	case delta != nil:
		value, err := ValidateDelta(*delta)
		if err != nil {
			return QuantityAdjustment{}, err
		}

		return QuantityAdjustment{Mode: QuantityModeDelta, Value: value, Raw: *delta}, nil
	default:
		value, err := ValidateQuantity(*quantity)
		if err != nil {
			return QuantityAdjustment{}, err
		}

		return QuantityAdjustment{Mode: QuantityModeSet, Value: value, Raw: *quantity}, nil
	}
}

// Apply computes the quantity the store should end up with. Delta results are
// clamped at zero and saturate at math.MaxInt64, as the store does.
func (a QuantityAdjustment) Apply(current int) int {
	if a.Mode == QuantityModeSet {
		return a.Value
	}
	if a.Value > 0 && current > math.MaxInt64-a.Value {
		return math.MaxInt64
	}
	if next := current + a.Value; next > 0 {
		return next
	}

	return 0
}
