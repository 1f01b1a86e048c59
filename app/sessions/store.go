// Package sessions provides server-side login sessions: a badger-backed
// token store, an HMAC-signed session cookie, and one-shot flash messages.
package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	keyPrefix = "session:"

	// DefaultDuration is how long a login session stays valid.
	DefaultDuration = 24 * time.Hour
)

var ErrNoSession = errors.New("session not found")

// Session is one authenticated login, persisted under its token.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store keeps sessions in a badger database on disk.
type Store struct {
	db       *badger.DB
	duration time.Duration
}

// NewStore opens (or creates) the session database at dir.
func NewStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	return &Store{db: db, duration: DefaultDuration}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Create starts a new session for userID and persists it.
func (s *Store) Create(userID int) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("generating session token: %w", err)
	}

	sess := &Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.duration),
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+token), data)
	})
	if err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}
	return sess, nil
}

// Get returns the session for token, or ErrNoSession when the token is
// unknown or expired.
func (s *Store) Get(token string) (*Session, error) {
	var sess Session
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + token))
		if err == badger.ErrKeyNotFound {
			return ErrNoSession
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sess)
		})
	})
	if err != nil {
		return nil, err
	}

	// Expiry is enforced on read; Sweep reclaims the stale records.
	if time.Now().After(sess.ExpiresAt) {
		return nil, ErrNoSession
	}
	return &sess, nil
}

// Delete removes the session for token. Unknown tokens are not an error.
func (s *Store) Delete(token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + token))
	})
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store) Sweep() (int, error) {
	var expired [][]byte
	now := time.Now()

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var sess Session
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &sess)
			})
			if err != nil {
				return err
			}
			if now.After(sess.ExpiresAt) {
				expired = append(expired, item.KeyCopy(nil))
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		for _, key := range expired {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(expired), nil
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
