package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/blognest/blognest-cli/internal/client/api"
	"github.com/blognest/blognest-cli/internal/client/services"
)

// MyPosts refreshes and lists the current user's posts,
// most-recent-first as ordered by the server.
func (a *App) MyPosts(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if err := a.posts.Refresh(ctx); err != nil {
		fmt.Println(api.UserMessage(err, "Failed to load your posts. Please try again."))
		return err
	}

	posts := a.posts.Posts()
	if len(posts) == 0 {
		fmt.Println("You have no posts yet.")
		return nil
	}

	for _, p := range posts {
		line := fmt.Sprintf("%s  %s", p.ID, p.Title)
		if p.Category != "" {
			line += "  [" + p.Category + "]"
		}
		fmt.Println(line)
	}
	return nil
}

// Post creates a quick text post: title plus a multi-line body.
func (a *App) Post(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.posts.Create(ctx, title, content)
	if err != nil {
		if errors.Is(err, services.ErrBlankFields) {
			fmt.Println("Please fill in both title and content")
			return err
		}
		fmt.Println(api.UserMessage(err, "Failed to create the post. Please try again."))
		return err
	}

	fmt.Println("Created post", post.ID)
	return nil
}

// Publish creates a full blog entry: title, body, category, and an
// optional cover image uploaded to the object store first.
func (a *App) Publish(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		return err
	}

	prompt := "Category (" + strings.Join(services.Categories[1:], ", ") + ")"
	category, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}

	imagePath, err := getSimpleText(a.reader, "Cover image path (leave empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.posts.Publish(ctx, title, content, category, imagePath)
	if err != nil {
		if errors.Is(err, services.ErrBlankFields) {
			fmt.Println("Please fill in both title and content")
			return err
		}
		fmt.Println(api.UserMessage(err, "Failed to publish the blog. Please try again."))
		return err
	}

	fmt.Println("Published blog", post.ID)
	return nil
}

// Update edits an existing post's title and body.
func (a *App) Update(ctx context.Context, id string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter new title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter new content", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.posts.Update(ctx, id, title, content)
	if err != nil {
		if errors.Is(err, services.ErrBlankFields) {
			fmt.Println("Please fill in both title and content")
			return err
		}
		fmt.Println(api.UserMessage(err, "Failed to update the post. Please try again."))
		return err
	}

	fmt.Println("Updated post", post.ID)
	return nil
}

// Delete removes a post after an explicit confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete post %s? (y/n)", id), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.posts.Delete(ctx, id); err != nil {
		fmt.Println(api.UserMessage(err, "Failed to delete the post. Please try again."))
		return err
	}

	fmt.Println("Deleted post", id)
	return nil
}
