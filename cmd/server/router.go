package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/blog-api/internal/api"
	apiMiddleware "github.com/phrazzld/blog-api/internal/api/middleware"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

const greeting = "Hello from the blog API!"

// routerDeps is everything the HTTP layer needs.
type routerDeps struct {
	server   config.ServerConfig
	logger   *slog.Logger
	tokens   auth.TokenService
	users    service.UserService
	posts    service.PostService
	comments service.CommentService
}

// setupRouter creates the application router from the application's services.
func (app *application) setupRouter() http.Handler {
	return newRouter(routerDeps{
		server:   app.config.Server,
		logger:   app.logger,
		tokens:   app.tokens,
		users:    app.userService,
		posts:    app.postService,
		comments: app.commentService,
	})
}

// newRouter creates and configures the router with all routes and middleware.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if deps.server.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(apiMiddleware.TraceMiddleware(deps.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(apiMiddleware.Recoverer(deps.server.IsDevelopment()))
	r.Use(securityHeaders()...)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	}))

	authHandler := api.NewAuthHandler(deps.users, deps.logger)
	postHandler := api.NewPostHandler(deps.posts, deps.logger)
	commentHandler := api.NewCommentHandler(deps.comments, deps.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(deps.tokens)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/posts", postHandler.ListPosts)
		r.Get("/posts/{id}", postHandler.GetPost)
		r.Get("/posts/{postId}/comments", commentHandler.ListComments)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/posts", postHandler.CreatePost)
			r.Put("/posts/{id}", postHandler.UpdatePost)
			r.Post("/posts/{postId}/comments", commentHandler.AddComment)
			r.Put("/comments/{id}", commentHandler.EditComment)
			r.Delete("/comments/{id}", commentHandler.DeleteComment)

			// Admin endpoints
			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireAdmin)

				r.Delete("/admin/posts/{id}", postHandler.DeletePost)
				r.Delete("/auth/users/{username}", authHandler.DeleteUser)
			})
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writePlain(w, r, deps.logger, greeting)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writePlain(w, r, deps.logger, "OK")
	})

	return r
}

// securityHeaders sets the usual hardening headers on every response.
func securityHeaders() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.SetHeader("X-Content-Type-Options", "nosniff"),
		middleware.SetHeader("X-Frame-Options", "DENY"),
		middleware.SetHeader("Referrer-Policy", "no-referrer"),
		middleware.SetHeader("Cross-Origin-Opener-Policy", "same-origin"),
		middleware.SetHeader("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"),
		middleware.SetHeader("Strict-Transport-Security", "max-age=15552000; includeSubDomains"),
	}
}

func writePlain(w http.ResponseWriter, r *http.Request, logger *slog.Logger, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error("failed to write response", "error", err, "path", r.URL.Path)
	}
}
