package routes

import (
	"database/sql"
	"log/slog"
	"net/http"
	"path/filepath"

	"flapjack/app/controllers"
	"flapjack/app/middleware"
	"flapjack/app/repositories"
	"flapjack/app/services"
	"flapjack/app/sessions"

	"github.com/gorilla/mux"
)

// Setup wires repositories, services, session handling, and controllers into
// the application's router. basePath is prepended to template and static
// paths; production passes "".
func Setup(db *sql.DB, store *sessions.Store, codec *sessions.CookieCodec, logger *slog.Logger, basePath string) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	// Repositories and services
	userRepo := repositories.NewSQLiteUserRepository(db)
	postRepo := repositories.NewSQLitePostRepository(db)
	commentRepo := repositories.NewSQLiteCommentRepository(db)

	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	manager := sessions.NewManager(store, codec, userRepo)

	// Controllers
	authController := controllers.NewAuthController(authService, manager, basePath)
	postController := controllers.NewPostController(postService, manager, basePath)
	commentController := controllers.NewCommentController(commentService, postService, manager, basePath)
	pageController := controllers.NewPageController(manager, basePath)

	// Authorization guards, composed per-route
	admin := middleware.AdminOnly(manager)
	authed := middleware.RequireLogin(manager)

	// Static files
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(filepath.Join(basePath, "static")))))

	// Public routes
	router.HandleFunc("/", postController.Index).Methods("GET")
	router.HandleFunc("/register", authController.Register).Methods("GET", "POST")
	router.HandleFunc("/login", authController.Login).Methods("GET", "POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")
	router.HandleFunc("/about", pageController.About).Methods("GET")
	router.HandleFunc("/contact", pageController.Contact).Methods("GET")

	// Post page; the comment POST checks the session itself so it can
	// flash-and-redirect anonymous submitters.
	router.HandleFunc("/post/{id:[0-9]+}", postController.Show).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", commentController.Create).Methods("POST")

	// Admin-only post management
	router.Handle("/new-post", admin(http.HandlerFunc(postController.New))).Methods("GET")
	router.Handle("/new-post", admin(http.HandlerFunc(postController.Create))).Methods("POST")
	router.Handle("/edit-post/{id:[0-9]+}", admin(http.HandlerFunc(postController.Edit))).Methods("GET")
	router.Handle("/edit-post/{id:[0-9]+}", admin(http.HandlerFunc(postController.Update))).Methods("POST")
	router.Handle("/delete-post/{id:[0-9]+}", admin(http.HandlerFunc(postController.Delete))).Methods("GET")

	// Comment deletion
	router.Handle("/delete-comment/{postId:[0-9]+}/{commentId:[0-9]+}",
		authed(http.HandlerFunc(commentController.Delete))).Methods("GET", "POST")
	router.Handle("/delete-comments/{id:[0-9]+}",
		admin(http.HandlerFunc(commentController.DeleteAll))).Methods("GET", "POST")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
