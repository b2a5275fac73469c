// Package handler provides the HTTP handlers for the posts feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"microblog_backend/internal/api"
	authentity "microblog_backend/internal/feature/auth/domain/entity"
	"microblog_backend/internal/feature/auth/transport/middleware"
	"microblog_backend/internal/feature/posts/domain/entity"
	"microblog_backend/internal/feature/posts/usecase"
)

// PostUsecase defines the post operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PostUsecase interface {
	List(ctx context.Context) ([]entity.Post, error)
	Get(ctx context.Context, actor *authentity.Identity, id uint) (*entity.Post, error)
	Create(ctx context.Context, actor *authentity.Identity, title, content string) (*entity.Post, error)
	Update(ctx context.Context, actor *authentity.Identity, id uint, title, content string) (*entity.Post, error)
	Delete(ctx context.Context, actor *authentity.Identity, id uint) error
	Search(ctx context.Context, query string) ([]entity.Post, error)
}

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler creates a new instance of PostHandler.
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// toResponse converts a post entity to its JSON representation.
func toResponse(p *entity.Post) api.PostResponse {
	return api.PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// toResponses converts a slice of post entities.
func toResponses(posts []entity.Post) []api.PostResponse {
	out := make([]api.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toResponse(&posts[i]))
	}
	return out
}

// writeError maps usecase failures to HTTP status codes. The ordering
// guarantees of the authorization gate surface here unchanged.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "post not found"})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
	default:
		slog.Error("post operation failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// postID parses the :id route parameter. An unparseable id becomes 0, which
// never exists, so the gate still applies its checks in order (an anonymous
// caller gets 401 before learning the id is garbage).
func postID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id)
}

// List handles GET /posts. Open to anonymous callers.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(posts))
}

// Get handles GET /posts/:id. Requires a logged-in identity.
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), middleware.IdentityFrom(c), postID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(post))
}

// Create handles POST /posts.
func (h *PostHandler) Create(c *gin.Context) {
	var req api.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	actor := middleware.IdentityFrom(c)
	post, err := h.posts.Create(c.Request.Context(), actor, req.Title, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("post created", "post_id", post.ID, "author", post.AuthorID)
	c.JSON(http.StatusCreated, toResponse(post))
}

// Update handles PUT /posts/:id. Only the author may edit.
func (h *PostHandler) Update(c *gin.Context) {
	var req api.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	actor := middleware.IdentityFrom(c)
	post, err := h.posts.Update(c.Request.Context(), actor, postID(c), req.Title, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("post updated", "post_id", post.ID, "author", post.AuthorID)
	c.JSON(http.StatusOK, toResponse(post))
}

// Delete handles DELETE /posts/:id. Only the author may delete.
func (h *PostHandler) Delete(c *gin.Context) {
	id := postID(c)
	if err := h.posts.Delete(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		writeError(c, err)
		return
	}

	slog.Info("post deleted", "post_id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Search handles GET /posts/search?q=. Open to anonymous callers; an empty
// query yields an empty list.
func (h *PostHandler) Search(c *gin.Context) {
	posts, err := h.posts.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(posts))
}
