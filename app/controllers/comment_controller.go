package controllers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"flapjack/app/forms"
	"flapjack/app/middleware"
	"flapjack/app/models"
	"flapjack/app/repositories"
	"flapjack/app/services"
	"flapjack/app/sessions"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	comments  *services.CommentService
	posts     *services.PostService
	sessions  *sessions.Manager
	templates map[string]*template.Template
}

// NewCommentController creates a new CommentController
func NewCommentController(comments *services.CommentService, posts *services.PostService, manager *sessions.Manager, basePath string) *CommentController {
	return &CommentController{
		comments:  comments,
		posts:     posts,
		sessions:  manager,
		templates: loadCommentTemplates(basePath),
	}
}

// Create handles a comment submission on the post page. Anonymous
// submitters are sent to the login page; on success the post page is
// re-rendered with a cleared form rather than redirecting.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, ok := cc.sessions.CurrentUser(r)
	if !ok {
		sessions.SetFlash(w, "Please login or register to post comments.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	form := forms.NewCommentForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		cc.renderPost(w, r, postID, form, errs)
		return
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: user.ID,
		Text:     form.Text,
	}
	err := cc.comments.AddComment(comment)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	cc.renderPost(w, r, postID, &forms.CommentForm{}, forms.Errors{})
}

// Delete removes one comment and returns to its post page
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}
	commentID, ok := pathID(w, r, "commentId")
	if !ok {
		return
	}

	user, _ := middleware.UserFrom(r.Context())
	err := cc.comments.DeleteComment(commentID, user)
	switch {
	case errors.Is(err, services.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	case errors.Is(err, repositories.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
}

// DeleteAll removes every comment on a post and redirects home
func (cc *CommentController) DeleteAll(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := cc.comments.DeleteAllComments(postID)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (cc *CommentController) renderPost(w http.ResponseWriter, r *http.Request, postID int, form *forms.CommentForm, errs forms.Errors) {
	post, err := cc.posts.GetPost(postID)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := baseData(cc.sessions, w, r)
	data["Post"] = post
	data["Comments"] = post.Comments
	data["Form"] = form
	data["Errors"] = errs
	render(w, cc.templates["show"], data)
}
