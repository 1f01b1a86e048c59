package repositories

import (
	"database/sql"
	"fmt"

	"flapjack/app/models"
)

// SQLiteCommentRepository implements CommentRepository on the sqlite database
type SQLiteCommentRepository struct {
	db *sql.DB
}

// NewSQLiteCommentRepository creates a new SQLiteCommentRepository
func NewSQLiteCommentRepository(db *sql.DB) *SQLiteCommentRepository {
	return &SQLiteCommentRepository{db: db}
}

const commentColumns = `c.id, c.post_id, c.author_id, c.text, c.created_at, u.username`

// Create inserts a new comment
func (r *SQLiteCommentRepository) Create(comment *models.Comment) error {
	res, err := r.db.Exec(`
		INSERT INTO comments (post_id, author_id, text, created_at)
		VALUES (?, ?, ?, ?)`,
		comment.PostID, comment.AuthorID, comment.Text, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading comment id: %w", err)
	}
	comment.ID = int(id)
	return nil
}

// GetByID retrieves a comment by ID with its author attached
func (r *SQLiteCommentRepository) GetByID(id int) (*models.Comment, error) {
	row := r.db.QueryRow(`
		SELECT `+commentColumns+`
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = ?`, id)

	comment, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning comment: %w", err)
	}
	return comment, nil
}

// ListByPost retrieves the post's comments ordered by date descending
func (r *SQLiteCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	rows, err := r.db.Query(`
		SELECT `+commentColumns+`
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = ?
		ORDER BY c.created_at DESC, c.id DESC`, postID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Delete deletes a comment by ID
func (r *SQLiteCommentRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
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

// DeleteByPost deletes every comment belonging to the post
func (r *SQLiteCommentRepository) DeleteByPost(postID int) error {
	_, err := r.db.Exec(`DELETE FROM comments WHERE post_id = ?`, postID)
	if err != nil {
		return fmt.Errorf("deleting comments for post %d: %w", postID, err)
	}
	return nil
}

func scanComment(s scanner) (*models.Comment, error) {
	var comment models.Comment
	var author models.User
	err := s.Scan(&comment.ID, &comment.PostID, &comment.AuthorID,
		&comment.Text, &comment.CreatedAt, &author.Username)
	if err != nil {
		return nil, err
	}
	author.ID = comment.AuthorID
	comment.Author = &author
	return &comment, nil
}
