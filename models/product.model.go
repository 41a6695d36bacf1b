package models

// Product represents one catalog item. Products are immutable once loaded;
// a catalog refresh replaces the whole set rather than editing entries.
type Product struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Stock     int     `json:"stock"`
	Thumbnail string  `json:"thumbnail,omitempty"`
}
