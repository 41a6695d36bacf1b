package store

import (
	"errors"
	"sync"

	"go-storefront/cartengine"
	"go-storefront/models"
	"go-storefront/views"
)

// ErrCatalogNotReady is returned for cart mutations attempted before the
// session has a successfully loaded catalog.
var ErrCatalogNotReady = errors.New("catalog not ready")

// Session holds one visitor's in-memory storefront state: the loaded
// catalog, the filter choices and the cart. Every transition replaces a
// whole value under the session mutex, so readers never observe a
// partially applied mutation. Nothing here survives the process.
type Session struct {
	ID string

	mu      sync.Mutex
	catalog []models.Product
	filter  models.FilterState
	cart    models.Cart
	loaded  bool
	loading bool
	loadErr string
	loadSeq uint64
}

func newSession(id string) *Session {
	return &Session{ID: id}
}

func (s *Session) beginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadSeq++
	s.loading = true
	return s.loadSeq
}

func (s *Session) completeLoad(seq uint64, products []models.Product, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		// A newer load superseded this one; drop the stale result.
		return
	}
	s.loading = false
	if err != nil {
		// The previous catalog and the cart are left untouched; the error
		// indicator replaces the product view until the next refresh.
		s.loadErr = err.Error()
		return
	}
	s.loadErr = ""
	s.catalog = products
	s.loaded = true
}

// View composes the storefront snapshot from the latest committed state
func (s *Session) View() models.StorefrontView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Product looks up a product in the loaded catalog by id
func (s *Session) Product(id int) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, product := range s.catalog {
		if product.ID == id {
			return product, true
		}
	}
	return models.Product{}, false
}

// UpdateCart applies op to the current cart and commits the result as the
// new cart. It reports whether the cart actually changed, so callers can
// log silent no-ops for diagnostics.
func (s *Session) UpdateCart(op func(models.Cart) models.Cart) (models.StorefrontView, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded || s.loading || s.loadErr != "" {
		return models.StorefrontView{}, false, ErrCatalogNotReady
	}
	before := cartengine.Totals(s.cart)
	s.cart = op(s.cart)
	after := cartengine.Totals(s.cart)
	return s.viewLocked(), before != after, nil
}

// SetFilter replaces the filter state wholesale
func (s *Session) SetFilter(filter models.FilterState) models.StorefrontView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
	return s.viewLocked()
}

// ClearFilter resets all filters to their defaults
func (s *Session) ClearFilter() models.StorefrontView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = models.FilterState{}
	return s.viewLocked()
}

func (s *Session) viewLocked() models.StorefrontView {
	return views.ComposeStorefront(s.catalog, s.filter, s.cart, s.loading, s.loadErr)
}
