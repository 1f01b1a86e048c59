package services

import (
	"fmt"

	"flapjack/app/models"
	"flapjack/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment creates a new comment on an existing post
func (s *CommentService) AddComment(comment *models.Comment) error {
	if _, err := s.postRepo.GetByID(comment.PostID); err != nil {
		return fmt.Errorf("looking up post %d: %w", comment.PostID, err)
	}

	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("invalid comment: %w", err)
	}

	return s.commentRepo.Create(comment)
}

// ListPostComments retrieves the post's comments, newest first
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, fmt.Errorf("looking up post %d: %w", postID, err)
	}

	return s.commentRepo.ListByPost(postID)
}

// DeleteComment removes a comment. Only the comment's author or the site
// admin may delete it; anyone else gets ErrForbidden.
func (s *CommentService) DeleteComment(commentID int, caller *models.User) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}

	if caller == nil || (caller.ID != comment.AuthorID && !caller.IsAdmin()) {
		return ErrForbidden
	}

	return s.commentRepo.Delete(commentID)
}

// DeleteAllComments removes every comment on the post
func (s *CommentService) DeleteAllComments(postID int) error {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return fmt.Errorf("looking up post %d: %w", postID, err)
	}

	return s.commentRepo.DeleteByPost(postID)
}
