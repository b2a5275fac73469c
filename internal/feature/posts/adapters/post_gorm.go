// Package adapters provides repository implementations for the posts feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"microblog_backend/internal/feature/posts/domain/entity"
	"microblog_backend/internal/feature/posts/usecase"
)

// postGorm is a GORM implementation of the PostRepository interface.
type postGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure postGorm implements PostRepository.
var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostGorm creates a new instance of postGorm for the given gorm.DB connection.
func NewPostGorm(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// Create persists a new post and assigns its auto-incremented ID.
func (r *postGorm) Create(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID retrieves a post by ID.
// It returns usecase.ErrPostNotFound if the post does not exist.
func (r *postGorm) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var post entity.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindAll retrieves every post ordered by creation order ascending.
// The result is recomputed on each call, not a cached snapshot.
func (r *postGorm) FindAll(ctx context.Context) ([]entity.Post, error) {
	posts := make([]entity.Post, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update overwrites the title and content of an existing post. Only those two
// columns are written; the author reference is immutable. Last write wins.
func (r *postGorm) Update(ctx context.Context, post *entity.Post) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}

// Delete removes a post by ID.
// It returns usecase.ErrPostNotFound if the post does not exist.
func (r *postGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}

// escapeLike escapes the LIKE wildcards so the query matches literally.
// "!" is used as the escape character because a backslash inside a string
// literal is itself special to MySQL.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `!`, `!!`)
	s = strings.ReplaceAll(s, `%`, `!%`)
	s = strings.ReplaceAll(s, `_`, `!_`)
	return s
}

// Search retrieves posts whose title or content contains the query as a
// substring, ordered by creation order ascending. Matching uses SQL LIKE and
// is case-insensitive under the default MySQL and SQLite collations.
func (r *postGorm) Search(ctx context.Context, query string) ([]entity.Post, error) {
	pattern := "%" + escapeLike(query) + "%"
	posts := make([]entity.Post, 0)
	if err := r.db.WithContext(ctx).
		Where("title LIKE ? ESCAPE '!' OR content LIKE ? ESCAPE '!'", pattern, pattern).
		Order("id ASC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
