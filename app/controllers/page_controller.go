package controllers

import (
	"html/template"
	"net/http"

	"flapjack/app/sessions"
)

// PageController serves the static info pages
type PageController struct {
	sessions  *sessions.Manager
	templates map[string]*template.Template
}

// NewPageController creates a new PageController
func NewPageController(manager *sessions.Manager, basePath string) *PageController {
	return &PageController{
		sessions:  manager,
		templates: loadPageTemplates(basePath),
	}
}

// About displays the about page
func (pg *PageController) About(w http.ResponseWriter, r *http.Request) {
	render(w, pg.templates["about"], baseData(pg.sessions, w, r))
}

// Contact displays the contact page
func (pg *PageController) Contact(w http.ResponseWriter, r *http.Request) {
	render(w, pg.templates["contact"], baseData(pg.sessions, w, r))
}
