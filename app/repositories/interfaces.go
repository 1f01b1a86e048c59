package repositories

import "flapjack/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.BlogPost) error
	GetByID(id int) (*models.BlogPost, error)
	// List returns posts ordered by creation date, newest first.
	List(limit, offset int) ([]*models.BlogPost, error)
	Count() (int, error)
	Update(post *models.BlogPost) error
	// Delete removes the post and all of its comments in one transaction.
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	// ListByPost returns the post's comments ordered by date, newest first.
	ListByPost(postID int) ([]*models.Comment, error)
	Delete(id int) error
	DeleteByPost(postID int) error
}
