package model

// Option is the serving-size option of a menu item.
type Option string

const (
	OptionSmall  Option = "small"
	OptionMedium Option = "medium"
	OptionLarge  Option = "large"
)

// ValidOption reports whether s is one of the known serving options.
func ValidOption(s string) bool {
	switch Option(s) {
	case OptionSmall, OptionMedium, OptionLarge:
		return true
	}
	return false
}

// MenuItem is a single catalog entry. Price, Cost and Stock are kept as
// decimal text, matching how the store persists them; they are validated at
// the workflow boundary, not here.
type MenuItem struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Category string `db:"category" json:"category"`
	Price    string `db:"price" json:"price"`
	Cost     string `db:"cost" json:"cost"`
	Stock    string `db:"stock" json:"stock"`
	Options  Option `db:"options" json:"options"`
}

// Field names shared by validation, error maps and document mapping.
const (
	FieldName     = "name"
	FieldCategory = "category"
	FieldPrice    = "price"
	FieldCost     = "cost"
	FieldStock    = "stock"
	FieldOptions  = "options"
)
