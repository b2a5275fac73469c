// Package entity defines the domain entities for the posts feature.
package entity

import "time"

// Post represents a single published post. The auto-incremented ID doubles as
// the creation order used for the default feed listing.
type Post struct {
	// ID is the unique identifier for the post.
	ID uint `gorm:"primaryKey"`

	// Title is the bounded headline of the post.
	Title string `gorm:"size:100;not null"`

	// Content is the unbounded body text.
	Content string `gorm:"type:text;not null"`

	// AuthorID references the user that created the post.
	// It is set once at creation and never changes.
	AuthorID uint `gorm:"index;not null"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the post was last edited.
	UpdatedAt time.Time
}
