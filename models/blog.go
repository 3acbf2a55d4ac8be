package models

import (
	"io"
	"time"
)

// Image is a reference to an object uploaded to external storage.
type Image struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// Blog is a post owned by the user who created it.
type Blog struct {
	BlogID int64  `json:"_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`

	// Image holds at most one element; the JSON shape is a list.
	Image []Image `json:"image"`

	// UserID is the owning user. Mutations are allowed only when the acting
	// user's id equals UserID.
	UserID int64 `json:"-"`

	// User is the author projection, populated on reads.
	User *Author `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}

// BlogUpdate lists the blog columns an owner may change. Nil fields are left
// untouched.
type BlogUpdate struct {
	Title *string
	Body  *string
	Image *Image
}

// Empty reports whether the update carries no changes.
func (u BlogUpdate) Empty() bool {
	return u.Title == nil && u.Body == nil && u.Image == nil
}

// ImageFile is an uploaded image held in memory until it is pushed to object
// storage.
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}
