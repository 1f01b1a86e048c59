package services

import (
	"sort"

	"flapjack/app/models"
	"flapjack/app/repositories"
)

type mockUserRepo struct {
	users  map[int]*models.User
	nextID int
}

type mockPostRepo struct {
	posts  map[int]*models.BlogPost
	nextID int
	// comments is shared with the comment repo so Delete can cascade
	comments *mockCommentRepo
}

type mockCommentRepo struct {
	comments map[int]*models.Comment
	nextID   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*models.User), nextID: 1}
}

func newMockPostRepo(comments *mockCommentRepo) *mockPostRepo {
	return &mockPostRepo{posts: make(map[int]*models.BlogPost), nextID: 1, comments: comments}
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[int]*models.Comment), nextID: 1}
}

// UserRepository implementation

func (m *mockUserRepo) Create(user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// PostRepository implementation

func (m *mockPostRepo) Create(post *models.BlogPost) error {
	for _, p := range m.posts {
		if p.Title == post.Title {
			return repositories.ErrDuplicate
		}
	}
	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(id int) (*models.BlogPost, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *mockPostRepo) List(limit, offset int) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	// Newest first, like the sqlite implementation
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if offset >= len(posts) {
		return []*models.BlogPost{}, nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], nil
}

func (m *mockPostRepo) Count() (int, error) {
	return len(m.posts), nil
}

func (m *mockPostRepo) Update(post *models.BlogPost) error {
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) Delete(id int) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	if m.comments != nil {
		m.comments.DeleteByPost(id)
	}
	return nil
}

// CommentRepository implementation

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepo) GetByID(id int) (*models.Comment, error) {
	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *mockCommentRepo) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *mockCommentRepo) Delete(id int) error {
	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *mockCommentRepo) DeleteByPost(postID int) error {
	for id, c := range m.comments {
		if c.PostID == postID {
			delete(m.comments, id)
		}
	}
	return nil
}
