package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-storefront/models"
)

// LoadError is the single failure category for a catalog load. Network
// unreachability, a non-success status and a malformed payload all
// collapse into it; the caller only decides presentation.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog load failed: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// productPage mirrors the upstream response envelope
type productPage struct {
	Products []productRecord `json:"products"`
}

// productRecord allow-lists the upstream fields the storefront keeps.
// Anything else the upstream sends is dropped here, so downstream code
// never depends on the external schema.
type productRecord struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Stock     int     `json:"stock"`
	Thumbnail string  `json:"thumbnail"`
}

// Client fetches bounded product pages from the upstream catalog API
type Client struct {
	baseURL string
	limit   int
	client  *http.Client
}

// NewClient creates a new catalog Client
func NewClient(baseURL string, limit int, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		limit:   limit,
		client:  &http.Client{Timeout: timeout},
	}
}

// Load fetches one page of products and normalizes each record into the
// internal Product shape. The load is all-or-nothing: any failure returns
// a LoadError and no products.
func (c *Client) Load(ctx context.Context) ([]models.Product, error) {
	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var page productPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, &LoadError{Err: err}
	}
	if page.Products == nil {
		return nil, &LoadError{Err: errors.New("payload missing products array")}
	}

	products := make([]models.Product, 0, len(page.Products))
	for _, record := range page.Products {
		products = append(products, models.Product{
			ID:        record.ID,
			Title:     record.Title,
			Price:     record.Price,
			Category:  record.Category,
			Stock:     record.Stock,
			Thumbnail: record.Thumbnail,
		})
	}
	return products, nil
}
