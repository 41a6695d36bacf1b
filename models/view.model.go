package models

// StorefrontView is the composed snapshot the presentation layer consumes.
// Every field is derived from the latest committed session state; nothing
// here is cached across a state change.
type StorefrontView struct {
	Loading          bool       `json:"loading"`
	Error            string     `json:"error,omitempty"`
	TotalProducts    int        `json:"totalProducts"`
	Categories       []string   `json:"categories"`
	FilteredProducts []Product  `json:"filteredProducts"`
	EmptyResults     bool       `json:"emptyResults"`
	Cart             Cart       `json:"cart"`
	Totals           CartTotals `json:"totals"`
}
