package repositories

import (
	"database/sql"
	"fmt"

	"flapjack/app/models"
)

// SQLiteUserRepository implements UserRepository on the sqlite database
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user. A duplicate email maps to ErrDuplicate.
func (r *SQLiteUserRepository) Create(user *models.User) error {
	res, err := r.db.Exec(`
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)`,
		user.Username, user.Email, user.PasswordHash, user.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading user id: %w", err)
	}
	user.ID = int(id)
	return nil
}

// GetByID retrieves a user by ID
func (r *SQLiteUserRepository) GetByID(id int) (*models.User, error) {
	return r.get(`SELECT id, username, email, password_hash, created_at
		FROM users WHERE id = ?`, id)
}

// GetByEmail retrieves a user by email address
func (r *SQLiteUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.get(`SELECT id, username, email, password_hash, created_at
		FROM users WHERE email = ?`, email)
}

func (r *SQLiteUserRepository) get(query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &user, nil
}
