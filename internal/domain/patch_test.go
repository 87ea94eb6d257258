package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestNewItem(t *testing.T) {
	item, err := NewItem(RawItemFields{
		ItemName: ptr(" Apple "),
		Quantity: ptr("10"),
		Price:    ptr("3.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, Item{ItemName: "Apple", Quantity: 10, Price: 3.5}, item)
}

func TestNewItemFirstErrorWins(t *testing.T) {
	_, err := NewItem(RawItemFields{Quantity: ptr("-1")})
	requireCode(t, err, FieldItemName, CodeRequired)

	_, err = NewItem(RawItemFields{ItemName: ptr("Apple"), Quantity: ptr("x"), Price: ptr("-1")})
	requireCode(t, err, FieldQuantity, CodeNotNumeric)

	_, err = NewItem(RawItemFields{ItemName: ptr("Apple"), Quantity: ptr("1"), Price: ptr("-1"), Category: ptr("ok")})
	requireCode(t, err, FieldPrice, CodeNegative)
}

func TestBuildPatch(t *testing.T) {
	patch, err := BuildPatch(RawItemFields{Category: ptr(""), Quantity: ptr("4")})
	require.NoError(t, err)
	assert.Equal(t, []string{FieldQuantity, FieldCategory}, patch.Columns())
	assert.Equal(t, map[string]interface{}{FieldQuantity: 4, FieldCategory: ""}, patch.Values())

	item := patch.Apply(Item{ID: 3, ItemName: "Pear", Quantity: 1, Price: 2, Category: "Fruit"})
	assert.Equal(t, Item{ID: 3, ItemName: "Pear", Quantity: 4, Price: 2, Category: ""}, item)
}

func TestBuildPatchIsAllOrNothing(t *testing.T) {
	patch, err := BuildPatch(RawItemFields{Quantity: ptr("-5"), Category: ptr("ok")})
	requireCode(t, err, FieldQuantity, CodeNegative)
	assert.True(t, patch.IsEmpty())
}

func TestBuildPatchNoFields(t *testing.T) {
	_, err := BuildPatch(RawItemFields{})
	assert.ErrorIs(t, err, ErrNoFieldsProvided)
}

func TestCollectPatch(t *testing.T) {
	patch, errs := CollectPatch(RawItemFields{
		ItemName: ptr(""),
		Quantity: ptr("2"),
		Price:    ptr("abc"),
		Category: ptr("Tools"),
	})
	require.Len(t, errs, 2)
	assert.Equal(t, CodeEmptyName, errs[0].Code)
	assert.Equal(t, CodeNotNumeric, errs[1].Code)
	assert.Equal(t, []string{FieldQuantity, FieldCategory}, patch.Columns())
}

func TestMissingRequired(t *testing.T) {
	errs := MissingRequired(RawItemFields{Category: ptr("x")})
	require.Len(t, errs, 3)
	assert.Equal(t, []string{"Item name is required.", "Quantity is required.", "Price is required."}, errs.Messages())
}
