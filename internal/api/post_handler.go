package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	posts  service.PostService
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts service.PostService, logger *slog.Logger) *PostHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PostHandler")
	}
	return &PostHandler{
		posts:  posts,
		logger: logger.With(slog.String("component", "post_handler")),
	}
}

// ListPosts handles GET /api/posts.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, err := domain.ParsePageRequest(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.posts.ListPublished(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetPost handles GET /api/posts/{id}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.posts.GetPost(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// CreatePost handles POST /api/posts. The author is the authenticated user.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		handleDecodeError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		handleValidationError(w, r, err)
		return
	}

	isPublished := req.IsPublished != nil && *req.IsPublished
	post, err := h.posts.CreatePost(r.Context(), identity.UserID, req.Title, req.Slug, req.Content, isPublished)
	if err != nil {
		// The token outlived its user.
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "The specified author does not exist.", err)
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("post created", slog.Int64("post_id", post.ID), slog.Int64("author_id", post.AuthorID))
	shared.RespondWithJSON(w, r, http.StatusCreated, post)
}

// UpdatePost handles PUT /api/posts/{id}. Only the author may update a post.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, postID, ok := handleIdentityAndPathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		handleDecodeError(w, r, err)
		return
	}

	post, err := h.posts.UpdatePost(r.Context(), userID, postID, domain.PostUpdate{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotOwned) {
			HandleAPIError(w, r, err, "You do not have permission to update this post.")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// DeletePost handles DELETE /api/admin/posts/{id}. The router restricts it
// to admins.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.posts.DeletePost(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("post deleted", slog.Int64("post_id", id))
	w.WriteHeader(http.StatusNoContent)
}
