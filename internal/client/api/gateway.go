package api

import (
	"context"

	"github.com/blognest/blognest-cli/internal/client/models"
)

// CredentialSource supplies the bearer credential attached to outbound
// requests. The session store satisfies this interface; an empty string
// means no credential is attached.
type CredentialSource interface {
	Credential() string
}

// CreateBlogInput carries the fields of a new blog post. Image is a
// download URL produced by the storage uploader, or empty.
type CreateBlogInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Gateway defines every backend operation the client performs.
//
// Auth calls dispatch one-time codes; VerifyOTP is the only call that
// yields a session credential. Blog calls cover the public feed and the
// authenticated "my posts" surface.
type Gateway interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password string) error
	GoogleLogin(ctx context.Context, idToken string) error
	VerifyOTP(ctx context.Context, email, otp string) (*models.User, string, error)
	ResendOTP(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, otp string) error
	ResendResetOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, password string) error

	Blogs(ctx context.Context, category, search string) ([]models.Blog, error)
	Blog(ctx context.Context, id string) (*models.Blog, error)
	CreateBlog(ctx context.Context, in CreateBlogInput) (*models.Post, error)
	UpdateBlog(ctx context.Context, id string, in CreateBlogInput) (*models.Post, error)
	DeleteBlog(ctx context.Context, id string) error
	MyPosts(ctx context.Context) ([]models.Post, error)
}
