package cli

import (
	"context"
	"fmt"

	"github.com/blognest/blognest-cli/internal/client/api"
	"github.com/blognest/blognest-cli/internal/client/models"
)

func shortDate(b models.Blog) string {
	if b.CreatedAt.IsZero() {
		return ""
	}
	return b.CreatedAt.Format("2006-01-02")
}

// Blogs lists the public feed, optionally filtered by category and a
// search term. Both filters are applied server-side.
func (a *App) Blogs(ctx context.Context, category, search string) error {
	blogs, err := a.blogs.List(ctx, category, search)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Failed to load blogs. Please try again."))
		return err
	}

	if len(blogs) == 0 {
		fmt.Println("No blogs found.")
		return nil
	}

	for _, b := range blogs {
		line := fmt.Sprintf("%s  %s", b.ID, b.Title)
		if b.Category != "" {
			line += "  [" + b.Category + "]"
		}
		if b.Author != "" {
			line += "  by " + b.Author
		}
		if d := shortDate(b); d != "" {
			line += "  " + d
		}
		fmt.Println(line)
	}
	return nil
}

// Show prints a single blog in full.
func (a *App) Show(ctx context.Context, id string) error {
	blog, err := a.blogs.Get(ctx, id)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Failed to load the blog. Please try again."))
		return err
	}

	fmt.Println(blog.Title)
	if blog.Author != "" {
		fmt.Println("by", blog.Author)
	}
	if blog.Category != "" {
		fmt.Println("Category:", blog.Category)
	}
	if d := shortDate(*blog); d != "" {
		fmt.Println("Published:", d)
	}
	if blog.ReadTime != "" {
		fmt.Println("Read time:", blog.ReadTime)
	}
	fmt.Printf("Views: %d  Likes: %d\n", blog.Views, blog.Likes)
	if blog.Image != "" {
		fmt.Println("Image:", blog.Image)
	}
	fmt.Println()
	fmt.Println(blog.Content)
	return nil
}
