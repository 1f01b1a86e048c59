package services

import (
	"strings"
	"testing"
	"time"

	"flapjack/app/models"
	"flapjack/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService(t *testing.T) (*CommentService, *models.BlogPost, *mockCommentRepo) {
	t.Helper()

	comments := newMockCommentRepo()
	posts := newMockPostRepo(comments)

	post := validPost("Commented")
	require.NoError(t, posts.Create(post))

	return NewCommentService(comments, posts), post, comments
}

func TestCommentServiceAdd(t *testing.T) {
	service, post, repo := newCommentService(t)

	t.Run("valid comment is stored", func(t *testing.T) {
		comment := &models.Comment{PostID: post.ID, AuthorID: 2, Text: "Nice post."}
		err := service.AddComment(comment)
		require.NoError(t, err)
		assert.Greater(t, comment.ID, 0)
		assert.False(t, comment.CreatedAt.IsZero())
	})

	t.Run("comment on a missing post fails", func(t *testing.T) {
		comment := &models.Comment{PostID: 9999, AuthorID: 2, Text: "Into the void."}
		err := service.AddComment(comment)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("over-length comment rejected", func(t *testing.T) {
		before := len(repo.comments)
		comment := &models.Comment{PostID: post.ID, AuthorID: 2, Text: strings.Repeat("a", 501)}
		err := service.AddComment(comment)
		assert.Error(t, err)
		assert.Len(t, repo.comments, before)
	})
}

func TestCommentServiceDeleteOwnership(t *testing.T) {
	author := &models.User{ID: 2, Username: "author"}
	stranger := &models.User{ID: 3, Username: "stranger"}
	admin := &models.User{ID: models.AdminUserID, Username: "admin"}

	newComment := func(t *testing.T, service *CommentService, postID int) *models.Comment {
		t.Helper()
		comment := &models.Comment{PostID: postID, AuthorID: author.ID, Text: "mine", CreatedAt: time.Now()}
		require.NoError(t, service.AddComment(comment))
		return comment
	}

	t.Run("author may delete their own comment", func(t *testing.T) {
		service, post, _ := newCommentService(t)
		comment := newComment(t, service, post.ID)
		assert.NoError(t, service.DeleteComment(comment.ID, author))
	})

	t.Run("another user is forbidden", func(t *testing.T) {
		service, post, repo := newCommentService(t)
		comment := newComment(t, service, post.ID)
		err := service.DeleteComment(comment.ID, stranger)
		assert.ErrorIs(t, err, ErrForbidden)
		_, err = repo.GetByID(comment.ID)
		assert.NoError(t, err)
	})

	t.Run("anonymous caller is forbidden", func(t *testing.T) {
		service, post, _ := newCommentService(t)
		comment := newComment(t, service, post.ID)
		assert.ErrorIs(t, service.DeleteComment(comment.ID, nil), ErrForbidden)
	})

	t.Run("admin may delete anyone's comment", func(t *testing.T) {
		service, post, _ := newCommentService(t)
		comment := newComment(t, service, post.ID)
		assert.NoError(t, service.DeleteComment(comment.ID, admin))
	})

	t.Run("missing comment reports not found", func(t *testing.T) {
		service, _, _ := newCommentService(t)
		assert.ErrorIs(t, service.DeleteComment(9999, admin), repositories.ErrNotFound)
	})
}

func TestCommentServiceDeleteAll(t *testing.T) {
	service, post, repo := newCommentService(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, service.AddComment(&models.Comment{PostID: post.ID, AuthorID: 2, Text: "hey"}))
	}

	require.NoError(t, service.DeleteAllComments(post.ID))
	left, err := repo.ListByPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}
