package usecase

import (
	"context"
	"fmt"

	authentity "microblog_backend/internal/feature/auth/domain/entity"
	"microblog_backend/internal/feature/posts/domain/entity"
)

// maxTitleLength bounds the post title.
const maxTitleLength = 100

// PostRepository abstracts the persistence layer for post entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PostRepository interface {
	// Create persists a new post and assigns its ID.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a post by ID.
	// It returns ErrPostNotFound if the post does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Post, error)

	// FindAll retrieves every post ordered by creation order ascending.
	FindAll(ctx context.Context) ([]entity.Post, error)

	// Update overwrites the title and content of an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post by ID.
	Delete(ctx context.Context, id uint) error

	// Search retrieves posts whose title or content contains the query as a
	// substring, ordered by creation order ascending.
	Search(ctx context.Context, query string) ([]entity.Post, error)
}

// postUsecase implements the post operations behind the authorization gate.
// Every action passes through the policy table before touching the store.
type postUsecase struct {
	posts PostRepository
}

// NewPostUsecase creates a new instance of postUsecase.
func NewPostUsecase(posts PostRepository) *postUsecase {
	return &postUsecase{posts: posts}
}

// authorize enforces the authentication half of the policy for actions
// without a target post.
func (u *postUsecase) authorize(action Action, actor *authentity.Identity) error {
	if policies[action].requiresAuth && actor == nil {
		return ErrUnauthenticated
	}
	return nil
}

// authorizeTarget enforces the full policy for actions on a specific post.
// The checks are ordered: authentication before existence, existence before
// ownership. An anonymous caller never learns whether the post exists, and
// Forbidden is only ever returned for a post that does exist.
func (u *postUsecase) authorizeTarget(ctx context.Context, action Action, actor *authentity.Identity, id uint) (*entity.Post, error) {
	pol := policies[action]
	if pol.requiresAuth && actor == nil {
		return nil, ErrUnauthenticated
	}

	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if pol.requiresOwner && post.AuthorID != actor.UserID {
		return nil, ErrForbidden
	}
	return post, nil
}

// validatePost checks the title and content bounds shared by create and edit.
func validatePost(title, content string) error {
	if title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, maxTitleLength)
	}
	if content == "" {
		return fmt.Errorf("%w: content must not be empty", ErrInvalidInput)
	}
	return nil
}

// List returns all posts in creation order. Open to anonymous callers.
func (u *postUsecase) List(ctx context.Context) ([]entity.Post, error) {
	if err := u.authorize(ActionList, nil); err != nil {
		return nil, err
	}
	return u.posts.FindAll(ctx)
}

// Get returns a single post. Requires a logged-in identity but not ownership.
func (u *postUsecase) Get(ctx context.Context, actor *authentity.Identity, id uint) (*entity.Post, error) {
	return u.authorizeTarget(ctx, ActionView, actor, id)
}

// Create publishes a new post authored by the acting identity.
func (u *postUsecase) Create(ctx context.Context, actor *authentity.Identity, title, content string) (*entity.Post, error) {
	if err := u.authorize(ActionCreate, actor); err != nil {
		return nil, err
	}
	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:    title,
		Content:  content,
		AuthorID: actor.UserID,
	}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update edits the title and content of a post owned by the acting identity.
// Concurrent edits are last-write-wins; there is no version check.
func (u *postUsecase) Update(ctx context.Context, actor *authentity.Identity, id uint, title, content string) (*entity.Post, error) {
	post, err := u.authorizeTarget(ctx, ActionEdit, actor, id)
	if err != nil {
		return nil, err
	}
	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content
	if err := u.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post owned by the acting identity.
func (u *postUsecase) Delete(ctx context.Context, actor *authentity.Identity, id uint) error {
	if _, err := u.authorizeTarget(ctx, ActionDelete, actor, id); err != nil {
		return err
	}
	return u.posts.Delete(ctx, id)
}

// Search returns the posts containing the query as a substring of their title
// or content. An empty query returns no posts rather than all of them,
// mirroring the "no query given" behavior of the search page. Matching is
// case-insensitive under the default collations.
func (u *postUsecase) Search(ctx context.Context, query string) ([]entity.Post, error) {
	if err := u.authorize(ActionSearch, nil); err != nil {
		return nil, err
	}
	if query == "" {
		return []entity.Post{}, nil
	}
	return u.posts.Search(ctx, query)
}
