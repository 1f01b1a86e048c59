package repositories

import (
	"database/sql"
	"fmt"

	"flapjack/app/models"
)

// SQLitePostRepository implements PostRepository on the sqlite database
type SQLitePostRepository struct {
	db *sql.DB
}

// NewSQLitePostRepository creates a new SQLitePostRepository
func NewSQLitePostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{db: db}
}

const postColumns = `p.id, p.author_id, p.title, p.subtitle, p.body, p.image_url, p.created_at, u.username`

// Create inserts a new post. A duplicate title maps to ErrDuplicate.
func (r *SQLitePostRepository) Create(post *models.BlogPost) error {
	res, err := r.db.Exec(`
		INSERT INTO blog_posts (author_id, title, subtitle, body, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		post.AuthorID, post.Title, post.Subtitle, post.Body, post.ImageURL, post.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("inserting post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading post id: %w", err)
	}
	post.ID = int(id)
	return nil
}

// GetByID retrieves a post by ID with its author attached
func (r *SQLitePostRepository) GetByID(id int) (*models.BlogPost, error) {
	row := r.db.QueryRow(`
		SELECT `+postColumns+`
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = ?`, id)

	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning post: %w", err)
	}
	return post, nil
}

// List retrieves posts ordered by creation date descending
func (r *SQLitePostRepository) List(limit, offset int) ([]*models.BlogPost, error) {
	rows, err := r.db.Query(`
		SELECT `+postColumns+`
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Count returns the total number of posts
func (r *SQLitePostRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM blog_posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting posts: %w", err)
	}
	return count, nil
}

// Update updates an existing post
func (r *SQLitePostRepository) Update(post *models.BlogPost) error {
	res, err := r.db.Exec(`
		UPDATE blog_posts
		SET title = ?, subtitle = ?, body = ?, image_url = ?
		WHERE id = ?`,
		post.Title, post.Subtitle, post.Body, post.ImageURL, post.ID)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("updating post: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the post and all of its comments in one transaction, so a
// crash mid-delete cannot strand orphaned comments.
func (r *SQLitePostRepository) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("starting delete transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM comments WHERE post_id = ?`, id); err != nil {
		return fmt.Errorf("deleting comments: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPost(s scanner) (*models.BlogPost, error) {
	var post models.BlogPost
	var author models.User
	err := s.Scan(&post.ID, &post.AuthorID, &post.Title, &post.Subtitle,
		&post.Body, &post.ImageURL, &post.CreatedAt, &author.Username)
	if err != nil {
		return nil, err
	}
	author.ID = post.AuthorID
	post.Author = &author
	return &post, nil
}
