package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blognest/blognest-cli/internal/client/api"
	"github.com/blognest/blognest-cli/internal/client/models"
	"github.com/blognest/blognest-cli/internal/logging"
)

// fakeGateway scripts the blog endpoints; auth endpoints are unused here.
type fakeGateway struct {
	blogs     []models.Blog
	blogsErr  error
	myPosts   []models.Post
	myErr     error
	created   *models.Post
	createErr error
	updated   *models.Post
	updateErr error
	deleteErr error

	gotCategory string
	gotSearch   string
	gotCreate   api.CreateBlogInput
	gotDeleteID string
}

func (f *fakeGateway) Login(context.Context, string, string) error       { return nil }
func (f *fakeGateway) Signup(context.Context, string, string) error      { return nil }
func (f *fakeGateway) GoogleLogin(context.Context, string) error         { return nil }
func (f *fakeGateway) ResendOTP(context.Context, string) error           { return nil }
func (f *fakeGateway) ForgotPassword(context.Context, string) error      { return nil }
func (f *fakeGateway) VerifyResetOTP(context.Context, string, string) error { return nil }
func (f *fakeGateway) ResendResetOTP(context.Context, string) error      { return nil }
func (f *fakeGateway) ResetPassword(context.Context, string, string) error { return nil }
func (f *fakeGateway) VerifyOTP(context.Context, string, string) (*models.User, string, error) {
	return nil, "", nil
}

func (f *fakeGateway) Blogs(_ context.Context, category, search string) ([]models.Blog, error) {
	f.gotCategory, f.gotSearch = category, search
	return f.blogs, f.blogsErr
}
func (f *fakeGateway) Blog(_ context.Context, id string) (*models.Blog, error) {
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			return &f.blogs[i], nil
		}
	}
	return nil, f.blogsErr
}
func (f *fakeGateway) CreateBlog(_ context.Context, in api.CreateBlogInput) (*models.Post, error) {
	f.gotCreate = in
	return f.created, f.createErr
}
func (f *fakeGateway) UpdateBlog(_ context.Context, id string, in api.CreateBlogInput) (*models.Post, error) {
	f.gotCreate = in
	return f.updated, f.updateErr
}
func (f *fakeGateway) DeleteBlog(_ context.Context, id string) error {
	f.gotDeleteID = id
	return f.deleteErr
}
func (f *fakeGateway) MyPosts(context.Context) ([]models.Post, error) {
	return f.myPosts, f.myErr
}

type fakeUploader struct {
	url     string
	err     error
	gotName string
	gotData []byte
}

func (f *fakeUploader) Upload(_ context.Context, filename string, data []byte) (string, error) {
	f.gotName, f.gotData = filename, data
	return f.url, f.err
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPostService_RefreshReplacesList(t *testing.T) {
	gw := &fakeGateway{myPosts: []models.Post{{ID: "1", Title: "first"}, {ID: "2", Title: "second"}}}
	s := NewPostService(gw, nil, discardLogger())

	require.NoError(t, s.Refresh(context.Background()))
	require.Len(t, s.Posts(), 2)
	assert.Equal(t, "first", s.Posts()[0].Title)
}

func TestPostService_RefreshErrorKeepsList(t *testing.T) {
	gw := &fakeGateway{myPosts: []models.Post{{ID: "1"}}}
	s := NewPostService(gw, nil, discardLogger())
	require.NoError(t, s.Refresh(context.Background()))

	gw.myErr = errors.New("boom")
	require.Error(t, s.Refresh(context.Background()))
	assert.Len(t, s.Posts(), 1)
}

func TestPostService_CreatePrependsAfterConfirmation(t *testing.T) {
	gw := &fakeGateway{
		myPosts: []models.Post{{ID: "old", Title: "old"}},
		created: &models.Post{ID: "new", Title: "fresh"},
	}
	s := NewPostService(gw, nil, discardLogger())
	require.NoError(t, s.Refresh(context.Background()))

	post, err := s.Create(context.Background(), "fresh", "body")
	require.NoError(t, err)
	require.NotNil(t, post)

	require.Len(t, s.Posts(), 2)
	assert.Equal(t, "new", s.Posts()[0].ID, "server-returned post is prepended")
	assert.Equal(t, "old", s.Posts()[1].ID)
}

func TestPostService_CreateBlankFieldsLocalError(t *testing.T) {
	gw := &fakeGateway{}
	s := NewPostService(gw, nil, discardLogger())

	_, err := s.Create(context.Background(), "  ", "body")
	assert.ErrorIs(t, err, ErrBlankFields)
	assert.Empty(t, gw.gotCreate.Title, "no request may be sent")

	_, err = s.Create(context.Background(), "title", "")
	assert.ErrorIs(t, err, ErrBlankFields)
}

func TestPostService_CreateServerErrorLeavesListUntouched(t *testing.T) {
	gw := &fakeGateway{createErr: errors.New("rejected")}
	s := NewPostService(gw, nil, discardLogger())

	_, err := s.Create(context.Background(), "title", "body")
	require.Error(t, err)
	assert.Empty(t, s.Posts())
}

func TestPostService_DeleteRemovesAfterConfirmation(t *testing.T) {
	gw := &fakeGateway{myPosts: []models.Post{{ID: "1"}, {ID: "2"}, {ID: "3"}}}
	s := NewPostService(gw, nil, discardLogger())
	require.NoError(t, s.Refresh(context.Background()))

	require.NoError(t, s.Delete(context.Background(), "2"))
	require.Len(t, s.Posts(), 2)
	assert.Equal(t, "1", s.Posts()[0].ID)
	assert.Equal(t, "3", s.Posts()[1].ID)
	assert.Equal(t, "2", gw.gotDeleteID)
}

func TestPostService_DeleteServerRefusalKeepsList(t *testing.T) {
	gw := &fakeGateway{myPosts: []models.Post{{ID: "1"}}, deleteErr: errors.New("403")}
	s := NewPostService(gw, nil, discardLogger())
	require.NoError(t, s.Refresh(context.Background()))

	require.Error(t, s.Delete(context.Background(), "1"))
	assert.Len(t, s.Posts(), 1)
}

func TestPostService_PublishUploadsThenCreates(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("png-bytes"), 0o600))

	up := &fakeUploader{url: "https://cdn.example/blogs/cover.png"}
	gw := &fakeGateway{created: &models.Post{ID: "p1", Title: "t"}}
	s := NewPostService(gw, up, discardLogger())

	_, err := s.Publish(context.Background(), "t", "c", "Travel", imgPath)
	require.NoError(t, err)

	assert.Equal(t, "cover.png", up.gotName)
	assert.Equal(t, []byte("png-bytes"), up.gotData)
	assert.Equal(t, "https://cdn.example/blogs/cover.png", gw.gotCreate.Image)
	assert.Equal(t, "Travel", gw.gotCreate.Category)
}

func TestPostService_PublishUploadFailureAborts(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("x"), 0o600))

	up := &fakeUploader{err: errors.New("bucket gone")}
	gw := &fakeGateway{}
	s := NewPostService(gw, up, discardLogger())

	_, err := s.Publish(context.Background(), "t", "c", "Travel", imgPath)
	require.Error(t, err)
	assert.Empty(t, gw.gotCreate.Title, "blog must not be created without its image")
}

func TestPostService_UpdateReplacesInList(t *testing.T) {
	gw := &fakeGateway{
		myPosts: []models.Post{{ID: "1", Title: "old"}},
		updated: &models.Post{ID: "1", Title: "new"},
	}
	s := NewPostService(gw, nil, discardLogger())
	require.NoError(t, s.Refresh(context.Background()))

	_, err := s.Update(context.Background(), "1", "new", "body")
	require.NoError(t, err)
	assert.Equal(t, "new", s.Posts()[0].Title)
}

func TestBlogService_ListPassesFilters(t *testing.T) {
	gw := &fakeGateway{blogs: []models.Blog{{ID: "b1", Title: "Go"}}}
	s := NewBlogService(gw, discardLogger())

	blogs, err := s.List(context.Background(), "Technology", "react")
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Technology", gw.gotCategory)
	assert.Equal(t, "react", gw.gotSearch)
}

func TestBlogService_GetByID(t *testing.T) {
	gw := &fakeGateway{blogs: []models.Blog{{ID: "b1", Title: "Go"}}}
	s := NewBlogService(gw, discardLogger())

	blog, err := s.Get(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Go", blog.Title)
}
