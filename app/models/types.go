package models

import "time"

// AdminUserID identifies the single site administrator. The first account
// ever registered gets id 1 and with it every elevated permission; there are
// no other roles.
const AdminUserID = 1

// User is a registered account.
type User struct {
	ID           int    `validate:"gte=0"`
	Username     string `validate:"required,max=100"`
	Email        string `validate:"required,email,max=100"`
	PasswordHash string `validate:"required"`
	CreatedAt    time.Time

	Posts    []*BlogPost `validate:"-"`
	Comments []*Comment  `validate:"-"`
}

// BlogPost is a published article with comments.
type BlogPost struct {
	ID        int    `validate:"gte=0"`
	AuthorID  int    `validate:"required,gt=0"`
	Title     string `validate:"required,max=250"`
	Subtitle  string `validate:"required,max=250"`
	Body      string `validate:"required"`
	ImageURL  string `validate:"required,url,max=250"`
	CreatedAt time.Time

	Author   *User      `validate:"-"`
	Comments []*Comment `validate:"-"`
}

// Comment is a reader comment on a blog post.
type Comment struct {
	ID        int    `validate:"gte=0"`
	PostID    int    `validate:"required,gt=0"`
	AuthorID  int    `validate:"required,gt=0"`
	Text      string `validate:"required,max=500"`
	CreatedAt time.Time

	Author *User     `validate:"-"`
	Post   *BlogPost `validate:"-"`
}
