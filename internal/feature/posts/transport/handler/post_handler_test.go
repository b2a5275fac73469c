package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "microblog_backend/internal/feature/auth/domain/entity"
	"microblog_backend/internal/feature/auth/transport/middleware"
	"microblog_backend/internal/feature/posts/domain/entity"
	"microblog_backend/internal/feature/posts/usecase"
)

// mockPostUsecase is a mock implementation of the PostUsecase interface.
type mockPostUsecase struct {
	ListFunc   func(ctx context.Context) ([]entity.Post, error)
	GetFunc    func(ctx context.Context, actor *authentity.Identity, id uint) (*entity.Post, error)
	CreateFunc func(ctx context.Context, actor *authentity.Identity, title, content string) (*entity.Post, error)
	UpdateFunc func(ctx context.Context, actor *authentity.Identity, id uint, title, content string) (*entity.Post, error)
	DeleteFunc func(ctx context.Context, actor *authentity.Identity, id uint) error
	SearchFunc func(ctx context.Context, query string) ([]entity.Post, error)
}

func (m *mockPostUsecase) List(ctx context.Context) ([]entity.Post, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []entity.Post{}, nil
}

func (m *mockPostUsecase) Get(ctx context.Context, actor *authentity.Identity, id uint) (*entity.Post, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, id)
	}
	return nil, usecase.ErrPostNotFound
}

func (m *mockPostUsecase) Create(ctx context.Context, actor *authentity.Identity, title, content string) (*entity.Post, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, title, content)
	}
	return &entity.Post{ID: 1, Title: title, Content: content}, nil
}

func (m *mockPostUsecase) Update(ctx context.Context, actor *authentity.Identity, id uint, title, content string) (*entity.Post, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, title, content)
	}
	return nil, usecase.ErrPostNotFound
}

func (m *mockPostUsecase) Delete(ctx context.Context, actor *authentity.Identity, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

func (m *mockPostUsecase) Search(ctx context.Context, query string) ([]entity.Post, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []entity.Post{}, nil
}

// newRouter wires the handler with an optional planted identity.
func newRouter(uc PostUsecase, actor *authentity.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewPostHandler(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor != nil {
			c.Set(middleware.ContextIdentity, actor)
		}
		c.Next()
	})
	r.GET("/posts", h.List)
	r.GET("/posts/search", h.Search)
	r.GET("/posts/:id", h.Get)
	r.POST("/posts", h.Create)
	r.PUT("/posts/:id", h.Update)
	r.DELETE("/posts/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var aliceID = &authentity.Identity{UserID: 1, Username: "alice"}

func TestPostHandler_StatusMapping(t *testing.T) {
	// Every gate failure must keep its own status code; collapsing them
	// changes observable security behavior.
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"unauthenticated", usecase.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"not found", usecase.ErrPostNotFound, http.StatusNotFound},
		{"invalid input", usecase.ErrInvalidInput, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockPostUsecase{
				UpdateFunc: func(ctx context.Context, actor *authentity.Identity, id uint, title, content string) (*entity.Post, error) {
					return nil, tt.err
				},
			}
			r := newRouter(uc, aliceID)

			w := doJSON(t, r, http.MethodPut, "/posts/1", gin.H{"title": "x", "content": "y"})

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPostHandler_List(t *testing.T) {
	uc := &mockPostUsecase{
		ListFunc: func(ctx context.Context) ([]entity.Post, error) {
			return []entity.Post{
				{ID: 1, Title: "first", Content: "a", AuthorID: 1},
				{ID: 2, Title: "second", Content: "b", AuthorID: 2},
			}, nil
		},
	}
	r := newRouter(uc, nil) // anonymous

	w := doJSON(t, r, http.MethodGet, "/posts", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var posts []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0]["title"])
}

func TestPostHandler_Get(t *testing.T) {
	t.Run("passes the resolved identity and id to the gate", func(t *testing.T) {
		var gotActor *authentity.Identity
		var gotID uint
		uc := &mockPostUsecase{
			GetFunc: func(ctx context.Context, actor *authentity.Identity, id uint) (*entity.Post, error) {
				gotActor, gotID = actor, id
				return &entity.Post{ID: id, Title: "Hi", Content: "World", AuthorID: 1}, nil
			},
		}
		r := newRouter(uc, aliceID)

		w := doJSON(t, r, http.MethodGet, "/posts/7", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, aliceID, gotActor)
		assert.Equal(t, uint(7), gotID)
	})

	t.Run("unparseable id becomes 0 so the gate still orders its checks", func(t *testing.T) {
		var gotID uint = 99
		uc := &mockPostUsecase{
			GetFunc: func(ctx context.Context, actor *authentity.Identity, id uint) (*entity.Post, error) {
				gotID = id
				return nil, usecase.ErrPostNotFound
			},
		}
		r := newRouter(uc, aliceID)

		w := doJSON(t, r, http.MethodGet, "/posts/abc", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Zero(t, gotID)
	})
}

func TestPostHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockPostUsecase{
			CreateFunc: func(ctx context.Context, actor *authentity.Identity, title, content string) (*entity.Post, error) {
				return &entity.Post{ID: 1, Title: title, Content: content, AuthorID: actor.UserID}, nil
			},
		}
		r := newRouter(uc, aliceID)

		w := doJSON(t, r, http.MethodPost, "/posts", gin.H{"title": "Hi", "content": "World"})

		require.Equal(t, http.StatusCreated, w.Code)
		var post map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		assert.Equal(t, float64(1), post["author_id"])
	})

	t.Run("missing fields reach the gate, not the binder", func(t *testing.T) {
		// Field validation belongs to the usecase so it runs after the
		// authentication and ownership checks.
		var gotContent string
		uc := &mockPostUsecase{
			CreateFunc: func(ctx context.Context, actor *authentity.Identity, title, content string) (*entity.Post, error) {
				gotContent = content
				return nil, usecase.ErrInvalidInput
			},
		}
		r := newRouter(uc, aliceID)

		w := doJSON(t, r, http.MethodPost, "/posts", gin.H{"title": "Hi"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, gotContent)
	})

	t.Run("malformed JSON fails binding", func(t *testing.T) {
		r := newRouter(&mockPostUsecase{}, aliceID)

		req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostHandler_Delete(t *testing.T) {
	deleted := uint(0)
	uc := &mockPostUsecase{
		DeleteFunc: func(ctx context.Context, actor *authentity.Identity, id uint) error {
			deleted = id
			return nil
		},
	}
	r := newRouter(uc, aliceID)

	w := doJSON(t, r, http.MethodDelete, "/posts/3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), deleted)
}

func TestPostHandler_Search(t *testing.T) {
	var gotQuery string
	uc := &mockPostUsecase{
		SearchFunc: func(ctx context.Context, query string) ([]entity.Post, error) {
			gotQuery = query
			return []entity.Post{}, nil
		},
	}
	r := newRouter(uc, nil)

	w := doJSON(t, r, http.MethodGet, "/posts/search?q=World", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "World", gotQuery)
	assert.JSONEq(t, `[]`, w.Body.String(), "empty result serializes as an empty array, not null")
}
