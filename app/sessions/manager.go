package sessions

import (
	"net/http"

	"flapjack/app/models"
	"flapjack/app/repositories"
)

// Manager ties the cookie codec, the session store, and the user table
// together into the one question handlers ask: who is making this request?
type Manager struct {
	store *Store
	codec *CookieCodec
	users repositories.UserRepository
}

// NewManager creates a Manager.
func NewManager(store *Store, codec *CookieCodec, users repositories.UserRepository) *Manager {
	return &Manager{store: store, codec: codec, users: users}
}

// SignIn establishes an authenticated session for userID and sets the
// session cookie.
func (m *Manager) SignIn(w http.ResponseWriter, userID int) error {
	sess, err := m.store.Create(userID)
	if err != nil {
		return err
	}
	m.codec.Set(w, sess.Token, sess.ExpiresAt)
	return nil
}

// SignOut deletes the server-side session, if any, and clears the cookie.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	if token, ok := m.codec.Read(r); ok {
		if err := m.store.Delete(token); err != nil {
			return err
		}
	}
	m.codec.Clear(w)
	return nil
}

// CurrentUser resolves the request's session cookie to a user. The second
// return is false for anonymous requests, bad signatures, expired sessions,
// and sessions whose user no longer exists.
func (m *Manager) CurrentUser(r *http.Request) (*models.User, bool) {
	token, ok := m.codec.Read(r)
	if !ok {
		return nil, false
	}

	sess, err := m.store.Get(token)
	if err != nil {
		return nil, false
	}

	user, err := m.users.GetByID(sess.UserID)
	if err != nil {
		return nil, false
	}
	return user, true
}
