// Package services contains application services for the BlogNest
// client: the public blog feed and the authenticated "my posts" surface.
package services

import (
	"context"
	"fmt"

	"github.com/blognest/blognest-cli/internal/client/api"
	"github.com/blognest/blognest-cli/internal/client/models"
	"github.com/blognest/blognest-cli/internal/logging"
)

// Categories is the fixed vocabulary offered by the platform. "All"
// means no category filter.
var Categories = []string{"All", "Technology", "Design", "Travel", "Lifestyle", "Food", "Business", "Other"}

// BlogService retrieves the public feed. Read-only: the client never
// mutates a public blog.
type BlogService struct {
	gw  api.Gateway
	log logging.Logger
}

func NewBlogService(gw api.Gateway, log logging.Logger) *BlogService {
	return &BlogService{gw: gw, log: log}
}

// List fetches the feed filtered by category and search term. The
// gateway omits the category parameter for ""/"all" and the search
// parameter when empty.
func (s *BlogService) List(ctx context.Context, category, search string) ([]models.Blog, error) {
	blogs, err := s.gw.Blogs(ctx, category, search)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	s.log.Debug(ctx, "fetched blog feed", "count", len(blogs), "category", category, "search", search)
	return blogs, nil
}

// Get fetches a single public blog by identifier.
func (s *BlogService) Get(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.gw.Blog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog %s: %w", id, err)
	}
	return blog, nil
}
