// Package middleware holds the HTTP middleware: request logging, panic
// recovery, and the two authorization guards composed around protected
// routes at registration time.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"flapjack/app/models"
	"flapjack/app/sessions"
)

type contextKey string

const userKey contextKey = "user"

// Authenticator resolves a request to its logged-in user, if any.
// *sessions.Manager satisfies it.
type Authenticator interface {
	CurrentUser(r *http.Request) (*models.User, bool)
}

// WithUser returns a request whose context carries the logged-in user.
func WithUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, user))
}

// UserFrom returns the logged-in user a guard stored on the context.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// Logger logs information about each request
func Logger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start))
		})
	}
}

// Recoverer recovers from panics and logs the error
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("panic serving request",
						"path", r.URL.Path, "error", err)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLogin redirects anonymous requests to the login page with a flash
// message; authenticated requests continue with the user on the context.
func RequireLogin(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.CurrentUser(r)
			if !ok {
				sessions.SetFlash(w, "Please log in to continue.")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, WithUser(r, user))
		})
	}
}

// AdminOnly rejects every request not made by the site administrator with
// HTTP 403. This is the only authorization policy in the system.
func AdminOnly(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.CurrentUser(r)
			if !ok || !user.IsAdmin() {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, WithUser(r, user))
		})
	}
}
