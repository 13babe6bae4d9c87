package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	comments service.CommentService
	logger   *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentService, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CommentHandler")
	}
	return &CommentHandler{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// ListComments handles GET /api/posts/{postId}/comments.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathID(r, "postId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := domain.ParsePageRequest(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.comments.ListComments(r.Context(), postID, page)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// AddComment handles POST /api/posts/{postId}/comments.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, postID, ok := handleIdentityAndPathID(w, r, "postId", h.logger)
	if !ok {
		return
	}

	req, ok := decodeCommentRequest(w, r)
	if !ok {
		return
	}

	comment, err := h.comments.AddComment(r.Context(), userID, postID, req.Content)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, comment)
}

// EditComment handles PUT /api/comments/{id}. Only the owner may edit.
func (h *CommentHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	userID, commentID, ok := handleIdentityAndPathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	req, ok := decodeCommentRequest(w, r)
	if !ok {
		return
	}

	comment, err := h.comments.EditComment(r.Context(), userID, commentID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrNotOwned) {
			HandleAPIError(w, r, err, "You do not have permission to update this comment.")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comment)
}

// DeleteComment handles DELETE /api/comments/{id}. Only the owner may delete.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, commentID, ok := handleIdentityAndPathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.comments.DeleteComment(r.Context(), userID, commentID); err != nil {
		if errors.Is(err, service.ErrNotOwned) {
			HandleAPIError(w, r, err, "You do not have permission to delete this comment.")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	h.logger.Debug("comment deleted", slog.Int64("comment_id", commentID))
	w.WriteHeader(http.StatusNoContent)
}

func decodeCommentRequest(w http.ResponseWriter, r *http.Request) (*CommentRequest, bool) {
	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		handleDecodeError(w, r, err)
		return nil, false
	}
	if err := shared.ValidateRequest(&req); err != nil {
		handleValidationError(w, r, err)
		return nil, false
	}
	return &req, true
}
