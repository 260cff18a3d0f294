package entities

// AllOptionName labels the option that disables a filter.
const AllOptionName = "All"

// FilterOption is a single choice in an author or genre filter list.
// A nil ID means "no filter".
type FilterOption struct {
	ID   *uint  `json:"id"`
	Name string `json:"name"`
}

// AllOption returns the sentinel option that matches every record.
func AllOption() FilterOption {
	return FilterOption{Name: AllOptionName}
}

// IsAll reports whether the option is the "no filter" sentinel.
func (o FilterOption) IsAll() bool {
	return o.ID == nil
}
