// Package forms defines the submitted-form schemas and their declarative
// validation rules. Each form is built from a parsed request and validated
// with struct tags; failures come back as per-field messages the templates
// render inline.
package forms

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors maps form field names to user-facing validation messages.
type Errors map[string]string

// RegisterForm carries a new-account submission.
type RegisterForm struct {
	Username string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"required"`
}

// LoginForm carries a login submission.
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// PostForm carries a create-or-edit post submission.
type PostForm struct {
	Title    string `validate:"required,max=250"`
	Subtitle string `validate:"required,max=250"`
	ImageURL string `validate:"required,url,max=250"`
	Body     string `validate:"required"`
}

// CommentForm carries a new-comment submission.
type CommentForm struct {
	Text string `validate:"required,max=500"`
}

func NewRegisterForm(r *http.Request) *RegisterForm {
	return &RegisterForm{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
}

func NewLoginForm(r *http.Request) *LoginForm {
	return &LoginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
}

func NewPostForm(r *http.Request) *PostForm {
	return &PostForm{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImageURL: r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}
}

func NewCommentForm(r *http.Request) *CommentForm {
	return &CommentForm{
		Text: r.FormValue("comment"),
	}
}

// Validate runs the declarative checks and returns per-field messages.
// An empty map means the form is valid.
func (f *RegisterForm) Validate() Errors { return check(f) }
func (f *LoginForm) Validate() Errors    { return check(f) }
func (f *PostForm) Validate() Errors     { return check(f) }
func (f *CommentForm) Validate() Errors  { return check(f) }

func check(form any) Errors {
	err := validate.Struct(form)
	if err == nil {
		return Errors{}
	}

	errs := Errors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["Form"] = "Invalid submission."
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "max":
		return "This field is too long."
	default:
		return "Invalid value."
	}
}
