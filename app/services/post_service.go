package services

import (
	"fmt"

	"flapjack/app/models"
	"flapjack/app/repositories"
)

// PostsPerPage is how many posts the index shows per page.
const PostsPerPage = 5

// Page is one page of the post index.
type Page struct {
	Posts   []*models.BlogPost
	Number  int
	Prev    int
	Next    int
	HasPrev bool
	HasNext bool
}

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost creates a new blog post with validation
func (s *PostService) CreatePost(post *models.BlogPost) error {
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID with its comments, newest first
func (s *PostService) GetPost(id int) (*models.BlogPost, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("loading comments: %w", err)
	}
	post.Comments = comments

	return post, nil
}

// ListPosts retrieves one page of posts, newest first. Page numbers below 1
// are treated as 1.
func (s *PostService) ListPosts(page int) (*Page, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.postRepo.Count()
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * PostsPerPage
	posts, err := s.postRepo.List(PostsPerPage, offset)
	if err != nil {
		return nil, err
	}

	return &Page{
		Posts:   posts,
		Number:  page,
		Prev:    page - 1,
		Next:    page + 1,
		HasPrev: page > 1,
		HasNext: offset+len(posts) < total,
	}, nil
}

// UpdatePost updates an existing post, preserving its creation time and
// author.
func (s *PostService) UpdatePost(post *models.BlogPost) error {
	existing, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return err
	}

	post.CreatedAt = existing.CreatedAt
	post.AuthorID = existing.AuthorID

	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	return s.postRepo.Update(post)
}

// DeletePost deletes a post and all of its comments atomically
func (s *PostService) DeletePost(id int) error {
	return s.postRepo.Delete(id)
}
