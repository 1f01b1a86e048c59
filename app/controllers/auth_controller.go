package controllers

import (
	"errors"
	"html/template"
	"net/http"

	"flapjack/app/forms"
	"flapjack/app/repositories"
	"flapjack/app/services"
	"flapjack/app/sessions"
)

// AuthController handles registration, login, and logout
type AuthController struct {
	auth      *services.AuthService
	sessions  *sessions.Manager
	templates map[string]*template.Template
}

// NewAuthController creates a new AuthController
func NewAuthController(auth *services.AuthService, manager *sessions.Manager, basePath string) *AuthController {
	return &AuthController{
		auth:      auth,
		sessions:  manager,
		templates: loadAuthTemplates(basePath),
	}
}

// Register handles GET (form) and POST (create account, auto-login)
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		ac.renderRegister(w, r, &forms.RegisterForm{}, forms.Errors{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	form := forms.NewRegisterForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		ac.renderRegister(w, r, form, errs)
		return
	}

	user, err := ac.auth.Register(form.Username, form.Email, form.Password)
	if errors.Is(err, repositories.ErrDuplicate) {
		sessions.SetFlash(w, "E-mail address already signed up, login instead")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := ac.sessions.SignIn(w, user.ID); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Login handles GET (form) and POST (authenticate, establish session)
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		ac.renderLogin(w, r, &forms.LoginForm{}, forms.Errors{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	form := forms.NewLoginForm(r)
	if errs := form.Validate(); len(errs) > 0 {
		ac.renderLogin(w, r, form, errs)
		return
	}

	user, err := ac.auth.Login(form.Email, form.Password)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sessions.SetFlash(w, "That email doesn't exist. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		sessions.SetFlash(w, "You entered the wrong password. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case err != nil:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := ac.sessions.SignIn(w, user.ID); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session and redirects home
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ac.sessions.SignOut(w, r); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (ac *AuthController) renderRegister(w http.ResponseWriter, r *http.Request, form *forms.RegisterForm, errs forms.Errors) {
	data := baseData(ac.sessions, w, r)
	data["Form"] = form
	data["Errors"] = errs
	render(w, ac.templates["register"], data)
}

func (ac *AuthController) renderLogin(w http.ResponseWriter, r *http.Request, form *forms.LoginForm, errs forms.Errors) {
	data := baseData(ac.sessions, w, r)
	data["Form"] = form
	data["Errors"] = errs
	render(w, ac.templates["login"], data)
}
