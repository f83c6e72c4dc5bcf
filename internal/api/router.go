package api

import (
	"net/http"
	"time"

	"memo_api/internal/api/handler"
	"memo_api/internal/api/middleware"
	"memo_api/internal/app/service"
	"memo_api/internal/common/security"
	"memo_api/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the HTTP surface. Routes are mounted at the root, matching
// the paths the frontend already calls.
func NewRouter(
	authService *service.AuthService,
	noteService *service.NoteService,
	jwt *security.JWT,
	userRepo repository.UserRepository,
	corsAllowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)
	authenticator := middleware.Authenticator(jwt, userRepo)

	// Public routes: login and registration
	authHandler.RegisterPublicRoutes(r)

	// Authenticated routes
	r.Group(func(protected chi.Router) {
		protected.Use(authenticator)
		authHandler.RegisterProtectedRoutes(protected)
		protected.Route("/notes", noteHandler.RegisterRoutes)
	})

	return r
}
