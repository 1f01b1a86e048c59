package repositories

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// Open opens the sqlite database at path and verifies the connection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// Init creates the schema if it does not exist yet.
func Init(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS blog_posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author_id INTEGER NOT NULL REFERENCES users(id),
		title TEXT NOT NULL UNIQUE,
		subtitle TEXT NOT NULL,
		body TEXT NOT NULL,
		image_url TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		post_id INTEGER NOT NULL REFERENCES blog_posts(id),
		author_id INTEGER NOT NULL REFERENCES users(id),
		text TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_posts_created ON blog_posts(created_at);
	CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id);`

	_, err := db.Exec(schema)
	return err
}
