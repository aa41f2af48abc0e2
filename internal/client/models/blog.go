// Package models defines the wire types exchanged with the BlogNest
// backend. All types are read from JSON responses; the client never
// mutates a public Blog.
package models

import "time"

// Blog is a public feed item. Sourced entirely from the backend.
type Blog struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Image     string    `json:"image,omitempty"`
	Category  string    `json:"category,omitempty"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ReadTime  string    `json:"readTime,omitempty"`
	Views     int       `json:"views"`
	Likes     int       `json:"likes"`
}

// Post is a blog entry owned by the current user. Created and deleted
// only through the post-management service; the server orders lists
// most-recent-first.
type Post struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
