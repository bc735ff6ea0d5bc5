package dto

import (
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-menu-service/internal/model"
)

// ItemInput carries the raw field values entered for a create or edit. The
// numeric fields stay text all the way to the store; validation checks their
// shape but never reformats them.
type ItemInput struct {
	Name     string
	Category string
	Price    string
	Cost     string
	Stock    string
	Options  string
}

// Validate builds the per-field error map for the input. An empty map means
// the input may be persisted.
func (in *ItemInput) Validate() map[string]string {
	errs := map[string]string{}

	if in.Name == "" {
		errs[model.FieldName] = "Name is required"
	}
	if in.Category == "" {
		errs[model.FieldCategory] = "Category is required"
	}

	checkDecimal(errs, model.FieldPrice, "Price", in.Price)
	checkDecimal(errs, model.FieldCost, "Cost", in.Cost)

	if in.Stock == "" {
		errs[model.FieldStock] = "Stock is required"
	} else if n, err := strconv.Atoi(in.Stock); err != nil || n < 0 {
		errs[model.FieldStock] = "Stock must be a non-negative whole number"
	}

	if in.Options == "" {
		errs[model.FieldOptions] = "Options is required"
	} else if !model.ValidOption(in.Options) {
		errs[model.FieldOptions] = "Options must be small, medium or large"
	}

	return errs
}

// Item materializes the input as a MenuItem with the given id.
func (in *ItemInput) Item(id string) *model.MenuItem {
	return &model.MenuItem{
		ID:       id,
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Cost:     in.Cost,
		Stock:    in.Stock,
		Options:  model.Option(in.Options),
	}
}

func checkDecimal(errs map[string]string, field, label, value string) {
	if value == "" {
		errs[field] = label + " is required"
		return
	}
	if n, err := strconv.ParseFloat(value, 64); err != nil || n < 0 {
		errs[field] = label + " must be a non-negative number"
	}
}

// AcceptsKeystroke is the input gate applied before a proposed field value
// reaches the form state: the numeric fields admit only digits and a decimal
// point. It deliberately accepts shapes full validation later rejects
// (e.g. "1.2.3"); its job is to drop stray characters per keystroke, not to
// validate the finished value. An empty proposal is always accepted so the
// operator can clear a field.
func AcceptsKeystroke(field, proposed string) bool {
	switch field {
	case model.FieldPrice, model.FieldCost, model.FieldStock:
	default:
		return true
	}
	for _, r := range proposed {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// EditableFields lists the operator-editable fields in form order.
var EditableFields = []string{
	model.FieldName, model.FieldCategory, model.FieldPrice,
	model.FieldCost, model.FieldStock, model.FieldOptions,
}

// Get returns the current value of a named field.
func (in *ItemInput) Get(field string) string {
	switch field {
	case model.FieldName:
		return in.Name
	case model.FieldCategory:
		return in.Category
	case model.FieldPrice:
		return in.Price
	case model.FieldCost:
		return in.Cost
	case model.FieldStock:
		return in.Stock
	case model.FieldOptions:
		return in.Options
	}
	return ""
}

// Set applies a proposed value to a named field, honoring the keystroke
// gate. It reports whether the value was accepted.
func (in *ItemInput) Set(field, proposed string) bool {
	if !AcceptsKeystroke(field, proposed) {
		return false
	}
	switch field {
	case model.FieldName:
		in.Name = proposed
	case model.FieldCategory:
		in.Category = proposed
	case model.FieldPrice:
		in.Price = proposed
	case model.FieldCost:
		in.Cost = proposed
	case model.FieldStock:
		in.Stock = proposed
	case model.FieldOptions:
		in.Options = strings.ToLower(proposed)
	default:
		return false
	}
	return true
}
