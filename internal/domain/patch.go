package domain

// PatchField is one column of a sparse update with its normalized value.
type PatchField struct {
	Column string
	Value  interface{}
}

// ItemPatch lists the columns an update touches, in a fixed column order.
// Columns not in the patch stay untouched.
type ItemPatch struct {
	fields []PatchField
}

func (p *ItemPatch) set(column string, value interface{}) {
	p.fields = append(p.fields, PatchField{Column: column, Value: value})
}

func (p ItemPatch) IsEmpty() bool {
	return len(p.fields) == 0
}

func (p ItemPatch) Fields() []PatchField {
	return append([]PatchField(nil), p.fields...)
}

func (p ItemPatch) Columns() []string {
	columns := make([]string, len(p.fields))
	for i, f := range p.fields {
		columns[i] = f.Column
	}

	return columns
}

// Values folds the patch into a column → value map for the store.
func (p ItemPatch) Values() map[string]interface{} {
	values := make(map[string]interface{}, len(p.fields))
	for _, f := range p.fields {
		values[f.Column] = f.Value
	}

	return values
}

// Apply returns item with the patched columns replaced.
func (p ItemPatch) Apply(item Item) Item {
	for _, f := range p.fields {
		switch f.Column {
		case FieldItemName:
			item.ItemName = f.Value.(string)
		case FieldQuantity:
			item.Quantity = f.Value.(int)
		case FieldPrice:
			item.Price = f.Value.(float64)
		case FieldCategory:
			item.Category = f.Value.(string)
		}
	}

	return item
}

type fieldRule struct {
	column string
	raw    func(RawItemFields) *string
	parse  func(string) (interface{}, error)
}

// itemFieldRules is ordered: it decides both validation order and patch order.
var itemFieldRules = []fieldRule{
	{
		column: FieldItemName,
		raw:    func(f RawItemFields) *string { return f.ItemName },
		parse:  func(s string) (interface{}, error) { return ValidateItemName(s) },
	},
	{
		column: FieldQuantity,
		raw:    func(f RawItemFields) *string { return f.Quantity },
		parse:  func(s string) (interface{}, error) { return ValidateQuantity(s) },
	},
	{
		column: FieldPrice,
		raw:    func(f RawItemFields) *string { return f.Price },
		parse:  func(s string) (interface{}, error) { return ValidatePrice(s) },
	},
	{
		column: FieldCategory,
		raw:    func(f RawItemFields) *string { return f.Category },
		parse:  func(s string) (interface{}, error) { return ValidateCategory(s) },
	},
}

// BuildPatch validates every supplied field and stops at the first failure.
// An empty input yields ErrNoFieldsProvided.
func BuildPatch(raw RawItemFields) (ItemPatch, error) {
	var patch ItemPatch
	for _, rule := range itemFieldRules {
		value := rule.raw(raw)
		if value == nil {
			continue
		}

		normalized, err := rule.parse(*value)
		if err != nil {
			return ItemPatch{}, err
		}
		patch.set(rule.column, normalized)
	}

	if patch.IsEmpty() {
		return ItemPatch{}, ErrNoFieldsProvided
	}

	return patch, nil
}

// CollectPatch validates every supplied field and keeps going after failures,
// returning the patch of valid fields next to all errors.
func CollectPatch(raw RawItemFields) (ItemPatch, ValidationErrors) {
	var (
		patch ItemPatch
		errs  ValidationErrors
	)
	for _, rule := range itemFieldRules {
		value := rule.raw(raw)
		if value == nil {
			continue
		}

		normalized, err := rule.parse(*value)
		if err != nil {
			if vErr, ok := AsValidationError(err); ok {
				errs = append(errs, vErr)
			}
			continue
		}
		patch.set(rule.column, normalized)
	}

	return patch, errs
}

// NewItem validates a create request. Item name, quantity and price are
// required; the first missing or invalid field wins.
func NewItem(raw RawItemFields) (Item, error) {
	if missing := MissingRequired(raw); len(missing) > 0 {
		return Item{}, missing[0]
	}

	patch, err := BuildPatch(raw)
	if err != nil {
		return Item{}, err
	}

	return patch.Apply(Item{}), nil
}

// MissingRequired lists a required-field error for every create field absent from raw.
func MissingRequired(raw RawItemFields) ValidationErrors {
	var errs ValidationErrors
	if raw.ItemName == nil {
		errs = append(errs, NewValidationError(FieldItemName, CodeRequired))
	}
	if raw.Quantity == nil {
		errs = append(errs, NewValidationError(FieldQuantity, CodeRequired))
	}
	if raw.Price == nil {
		errs = append(errs, NewValidationError(FieldPrice, CodeRequired))
	}

	return errs
}
