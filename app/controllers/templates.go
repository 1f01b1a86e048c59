package controllers

import (
	"html/template"
	"net/http"
	"path/filepath"

	"flapjack/app/sessions"
)

// loadAuthTemplates loads and parses the auth-related templates
func loadAuthTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["register"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/auth/register.html"),
	))
	templates["login"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/auth/login.html"),
	))
	return templates
}

// loadPostTemplates loads and parses the post-related templates
func loadPostTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/index.html"),
	))
	templates["show"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/show.html"),
		filepath.Join(basePath, "app/views/shared/comments.html"),
	))
	templates["form"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/form.html"),
	))
	return templates
}

// loadCommentTemplates loads the templates the comment handlers render.
// Comments are shown inline on the post page, so this is the show template.
func loadCommentTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["show"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/show.html"),
		filepath.Join(basePath, "app/views/shared/comments.html"),
	))
	return templates
}

// loadPageTemplates loads the static info page templates
func loadPageTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["about"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/pages/about.html"),
	))
	templates["contact"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/pages/contact.html"),
	))
	return templates
}

// render executes the page template inside the layout.
func render(w http.ResponseWriter, t *template.Template, data any) {
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// baseData builds the fields every page render needs: the logged-in user (nil
// for anonymous requests) and any pending flash message, consumed here.
func baseData(m *sessions.Manager, w http.ResponseWriter, r *http.Request) map[string]any {
	user, _ := m.CurrentUser(r)
	return map[string]any{
		"CurrentUser": user,
		"Flash":       sessions.PopFlash(w, r),
	}
}
