package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

type contextKey string

const viewerIDKey contextKey = "viewerID"

const (
	sessionName   = "fritter_session"
	sessionUserID = "userID"

	// MinSessionSecretLength guards against weak cookie signing keys
	MinSessionSecretLength = 32
)

// SessionIdentity extracts the optional viewer identity from the session
// cookie. It only establishes who the request is for; credential checks
// are not this layer's concern. Requests without a session simply proceed
// as anonymous.
type SessionIdentity struct {
	store *sessions.CookieStore
}

// NewSessionIdentity creates the session identity middleware backed by a
// cookie store signed with secret
func NewSessionIdentity(secret string) *SessionIdentity {
	if len(secret) < MinSessionSecretLength {
		log.Fatalf("SESSION_SECRET must be at least %d bytes", MinSessionSecretLength)
	}
	return &SessionIdentity{store: sessions.NewCookieStore([]byte(secret))}
}

// Middleware attaches the session's viewer id (if any) to the request
// context
func (s *SessionIdentity) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := s.store.Get(r, sessionName)
		if err != nil {
			// A corrupt or stale cookie downgrades to anonymous rather
			// than failing the request.
			log.Printf("[SESSION] Warning: dropping unreadable session: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		if id, ok := session.Values[sessionUserID].(int64); ok && id > 0 {
			ctx := context.WithValue(r.Context(), viewerIDKey, id)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// SetViewer records the viewer id in the session cookie
func (s *SessionIdentity) SetViewer(w http.ResponseWriter, r *http.Request, userID int64) error {
	session, _ := s.store.Get(r, sessionName)
	session.Values[sessionUserID] = userID
	session.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return session.Save(r, w)
}

// ClearViewer removes the viewer identity from the session cookie
func (s *SessionIdentity) ClearViewer(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionName)
	delete(session.Values, sessionUserID)
	session.Options = &sessions.Options{Path: "/", MaxAge: -1}
	return session.Save(r, w)
}

// GetViewerID returns the viewer id from the request context, or nil for
// an anonymous request
func GetViewerID(r *http.Request) *int64 {
	if id, ok := r.Context().Value(viewerIDKey).(int64); ok {
		return &id
	}
	return nil
}

// WithViewerID returns a context carrying the given viewer id; used by
// tests and by handlers that impersonate no one.
func WithViewerID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, viewerIDKey, id)
}
