package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"go-storefront/models"
)

// Loader fetches the product catalog from its upstream source
type Loader interface {
	Load(ctx context.Context) ([]models.Product, error)
}

// Store owns all live browsing sessions and drives their catalog loads
type Store struct {
	loader  Loader
	timeout time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// New creates an empty session store backed by the given catalog loader
func New(loader Loader, timeout time.Duration) *Store {
	return &Store{
		loader:   loader,
		timeout:  timeout,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session with the given id, if it exists
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Create registers a new session and starts its initial catalog load
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString())
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	s.StartLoad(sess)
	return sess
}

// StartLoad begins an asynchronous catalog load for the session. A
// successful load replaces the session's catalog wholesale. If another
// load starts before this one completes, the superseded result is
// discarded, so the newest load always determines the catalog.
func (s *Store) StartLoad(sess *Session) {
	seq := sess.beginLoad()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		products, err := s.loader.Load(ctx)
		if err != nil {
			log.Error().Err(err).Str("session_id", sess.ID).Msg("catalog load failed")
		}
		sess.completeLoad(seq, products, err)
	}()
}
