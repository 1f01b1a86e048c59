package repositories

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"flapjack/app/models"

	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh sqlite database in a temp directory with the
// schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	require.NoError(t, Init(db))
	return db
}

// createTestUser inserts a user and returns it.
func createTestUser(t *testing.T, db *sql.DB, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, NewSQLiteUserRepository(db).Create(user))
	return user
}

// createTestPost inserts a post by the given author with an explicit
// creation time, so ordering tests can control the timeline.
func createTestPost(t *testing.T, db *sql.DB, authorID int, title string, createdAt time.Time) *models.BlogPost {
	t.Helper()

	post := &models.BlogPost{
		AuthorID:  authorID,
		Title:     title,
		Subtitle:  "subtitle",
		Body:      "body",
		ImageURL:  "https://example.com/image.png",
		CreatedAt: createdAt,
	}
	require.NoError(t, NewSQLitePostRepository(db).Create(post))
	return post
}
