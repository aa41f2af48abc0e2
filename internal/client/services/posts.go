package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blognest/blognest-cli/internal/client/api"
	"github.com/blognest/blognest-cli/internal/client/models"
	"github.com/blognest/blognest-cli/internal/logging"
)

// ErrBlankFields is returned when a post is submitted without a title
// or content. Checked locally; never reaches the network.
var ErrBlankFields = errors.New("title and content are required")

// Uploader stores an image blob keyed by filename and returns a
// retrievable download URL. Satisfied by storage.S3Uploader.
type Uploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// PostService owns the in-memory list of the current user's posts.
// The list mirrors the server contract: most-recent-first, so a newly
// created post is prepended. All mutation happens on the UI goroutine.
//
// The service does not gate access itself; the route guard does that
// before any command reaches it.
type PostService struct {
	gw       api.Gateway
	uploader Uploader
	log      logging.Logger

	posts []models.Post
}

func NewPostService(gw api.Gateway, uploader Uploader, log logging.Logger) *PostService {
	return &PostService{gw: gw, uploader: uploader, log: log}
}

// Posts returns the in-memory list as of the last Refresh/Create/Delete.
func (s *PostService) Posts() []models.Post {
	return s.posts
}

// Refresh replaces the in-memory list with the server's.
func (s *PostService) Refresh(ctx context.Context) error {
	posts, err := s.gw.MyPosts(ctx)
	if err != nil {
		return fmt.Errorf("fetch my posts: %w", err)
	}
	s.posts = posts
	return nil
}

// Create submits a new post and, only after server confirmation,
// prepends the server-returned record to the in-memory list.
func (s *PostService) Create(ctx context.Context, title, content string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrBlankFields
	}

	post, err := s.gw.CreateBlog(ctx, api.CreateBlogInput{Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	if post != nil {
		s.posts = append([]models.Post{*post}, s.posts...)
	}
	s.log.Info(ctx, "created post", "title", title)
	return post, nil
}

// Publish creates a full blog entry with a category and a cover image.
// The image file is uploaded first; its download URL becomes the blog's
// image field.
func (s *PostService) Publish(ctx context.Context, title, content, category, imagePath string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrBlankFields
	}

	imageURL := ""
	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		imageURL, err = s.uploader.Upload(ctx, filepath.Base(imagePath), data)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
	}

	post, err := s.gw.CreateBlog(ctx, api.CreateBlogInput{
		Title:    title,
		Content:  content,
		Category: category,
		Image:    imageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	if post != nil {
		s.posts = append([]models.Post{*post}, s.posts...)
	}
	s.log.Info(ctx, "published blog", "title", title, "category", category)
	return post, nil
}

// Update edits an existing post in place.
func (s *PostService) Update(ctx context.Context, id, title, content string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrBlankFields
	}

	post, err := s.gw.UpdateBlog(ctx, id, api.CreateBlogInput{Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}
	for i := range s.posts {
		if s.posts[i].ID == id && post != nil {
			s.posts[i] = *post
		}
	}
	return post, nil
}

// Delete removes the post on the server, then drops it from the
// in-memory list. The list is untouched when the server refuses.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.gw.DeleteBlog(ctx, id); err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}

	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.posts = kept
	s.log.Info(ctx, "deleted post", "id", id)
	return nil
}
