package sessions

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iammorganparry/clive/apps/todo/internal/models"
)

type contextKey string

const sessionKey contextKey = "session"

// Options configures the session cookie.
type Options struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Manager binds a browser cookie to a stored Session for the lifetime of one
// request.
type Manager struct {
	store  *SessionStore
	opts   Options
	logger *slog.Logger
}

// NewManager creates a session manager.
func NewManager(store *SessionStore, opts Options, logger *slog.Logger) *Manager {
	return &Manager{store: store, opts: opts, logger: logger}
}

// Middleware loads the caller's session (starting a fresh one for a missing,
// unknown, expired or unreadable cookie) and exposes it through the request
// context. The session is saved before the first byte of the response goes
// out, so a redirect or flash is never sent for a change that was not stored.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.load(r)
		if err != nil {
			m.logger.Error("load session", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     m.opts.CookieName,
			Value:    sess.ID,
			Path:     "/",
			MaxAge:   int(m.opts.TTL.Seconds()),
			HttpOnly: true,
			Secure:   m.opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		cw := &commitWriter{ResponseWriter: w, commit: func() error {
			if err := m.store.Save(sess); err != nil {
				m.logger.Error("save session", "error", err, "session_id", sess.ID)
				return err
			}
			return nil
		}}
		next.ServeHTTP(cw, r.WithContext(NewContext(r.Context(), sess)))
		cw.flush()
	})
}

func (m *Manager) load(r *http.Request) (*models.Session, error) {
	if c, err := r.Cookie(m.opts.CookieName); err == nil && c.Value != "" {
		sess, err := m.store.GetByID(c.Value)
		switch {
		case errors.Is(err, ErrCorruptState):
			m.logger.Warn("discarding unreadable session", "error", err, "session_id", c.Value)
			m.discard(c.Value)
		case err != nil:
			return nil, err
		case sess != nil && m.expired(sess):
			m.discard(sess.ID)
		case sess != nil:
			return sess, nil
		}
	}

	sess := &models.Session{
		ID:    uuid.New().String(),
		Lists: []models.List{},
	}
	m.logger.Debug("session started", "session_id", sess.ID)
	return sess, nil
}

// discard removes a session row that will never be resumed. Failure is only
// logged; PurgeExpired or a later request retries.
func (m *Manager) discard(id string) {
	if err := m.store.Delete(id); err != nil {
		m.logger.Warn("delete session", "error", err, "session_id", id)
	}
}

func (m *Manager) expired(sess *models.Session) bool {
	return time.Unix(sess.UpdatedAt, 0).Add(m.opts.TTL).Before(time.Now())
}

// PurgeExpired removes every session idle for longer than the TTL.
func (m *Manager) PurgeExpired() (int64, error) {
	return m.store.PurgeExpired(time.Now().Add(-m.opts.TTL).Unix())
}

// NewContext returns a copy of ctx carrying sess.
func NewContext(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext returns the session attached by Middleware, or nil.
func FromContext(ctx context.Context) *models.Session {
	sess, _ := ctx.Value(sessionKey).(*models.Session)
	return sess
}
