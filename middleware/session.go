package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"go-storefront/store"
)

// Key type for context
type contextKey string

const SessionContextKey = contextKey("session")

const sessionCookieName = "storefront_session"

// SessionMiddleware attaches the caller's browsing session to the request
// context. A request without a known session cookie gets a fresh session,
// which also kicks off that session's initial catalog load.
func SessionMiddleware(sessions *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *store.Session
			if cookie, err := r.Cookie(sessionCookieName); err == nil {
				sess, _ = sessions.Get(cookie.Value)
			}

			if sess == nil {
				sess = sessions.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
				})
				log.Debug().Str("session_id", sess.ID).Msg("session created")
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware logs every request after it is handled
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	})
}
