package controllers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"flapjack/app/forms"
	"flapjack/app/middleware"
	"flapjack/app/models"
	"flapjack/app/repositories"
	"flapjack/app/services"
	"flapjack/app/sessions"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	posts     *services.PostService
	sessions  *sessions.Manager
	templates map[string]*template.Template
}

// NewPostController creates a new PostController
func NewPostController(posts *services.PostService, manager *sessions.Manager, basePath string) *PostController {
	return &PostController{
		posts:     posts,
		sessions:  manager,
		templates: loadPostTemplates(basePath),
	}
}

// Index handles the paginated post list
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	result, err := pc.posts.ListPosts(page)
	if err != nil {
		http.Error(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}

	data := baseData(pc.sessions, w, r)
	data["Page"] = result
	render(w, pc.templates["index"], data)
}

// Show displays a single post with its comments and the comment form
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	post, err := pc.posts.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := baseData(pc.sessions, w, r)
	data["Post"] = post
	data["Comments"] = post.Comments
	data["Form"] = &forms.CommentForm{}
	data["Errors"] = forms.Errors{}
	render(w, pc.templates["show"], data)
}

// New displays the form for creating a new post
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	pc.renderForm(w, r, &forms.PostForm{}, forms.Errors{}, "/new-post", "New Post")
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	form := forms.NewPostForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		pc.renderForm(w, r, form, errs, "/new-post", "New Post")
		return
	}

	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	post := &models.BlogPost{
		AuthorID: user.ID,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
	}
	err := pc.posts.CreatePost(post)
	if errors.Is(err, repositories.ErrDuplicate) {
		pc.renderForm(w, r, form, forms.Errors{"Title": "A post with this title already exists."}, "/new-post", "New Post")
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Edit displays the edit form pre-filled from the stored post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	post, err := pc.posts.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	form := &forms.PostForm{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		ImageURL: post.ImageURL,
		Body:     post.Body,
	}
	pc.renderForm(w, r, form, forms.Errors{}, fmt.Sprintf("/edit-post/%d", id), "Edit Post")
}

// Update handles saving an edited post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	action := fmt.Sprintf("/edit-post/%d", id)
	form := forms.NewPostForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		pc.renderForm(w, r, form, errs, action, "Edit Post")
		return
	}

	post := &models.BlogPost{
		ID:       id,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
	}
	err := pc.posts.UpdatePost(post)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		http.NotFound(w, r)
		return
	case errors.Is(err, repositories.ErrDuplicate):
		pc.renderForm(w, r, form, forms.Errors{"Title": "A post with this title already exists."}, action, "Edit Post")
		return
	case err != nil:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", id), http.StatusSeeOther)
}

// Delete removes a post and all of its comments, then redirects home
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := pc.posts.DeletePost(id)
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

func (pc *PostController) renderForm(w http.ResponseWriter, r *http.Request, form *forms.PostForm, errs forms.Errors, action, heading string) {
	data := baseData(pc.sessions, w, r)
	data["Form"] = form
	data["Errors"] = errs
	data["Action"] = action
	data["Heading"] = heading
	render(w, pc.templates["form"], data)
}

// pathID extracts a numeric path variable, replying 400 when it is not a
// number.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
