package models

import (
	"errors"
	"time"
)

// displayDateFormat matches the date stamp shown on rendered pages,
// e.g. "15:04PM 2 January, 2006".
const displayDateFormat = "15:04PM 2 January, 2006"

// Validate checks if the post meets all validation requirements
func (p *BlogPost) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *BlogPost) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// DisplayDate formats the creation time for rendering.
func (p *BlogPost) DisplayDate() string {
	return p.CreatedAt.Format(displayDateFormat)
}

// AddComment attaches a comment to the post
func (p *BlogPost) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
	return nil
}
