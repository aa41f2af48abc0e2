package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blognest/blognest-cli/internal/client/models"
)

// RestGateway is the concrete Gateway backed by a single shared
// *http.Client. The client's Timeout bounds every request end to end.
type RestGateway struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
}

// NewRestGateway validates the base URL and builds the shared client.
// creds may be nil for an always-unauthenticated gateway.
func NewRestGateway(baseURL string, timeout time.Duration, creds CredentialSource) (*RestGateway, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q missing scheme or host", baseURL)
	}
	return &RestGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
	}, nil
}

// do performs one JSON request. body and out may be nil. A transport
// failure (no HTTP response at all) is normalized to ErrUnavailable;
// a 4xx/5xx response becomes a *ServerError carrying the message body.
func (g *RestGateway) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	endpoint := g.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.creds != nil {
		if token := g.creds.Credential(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return newServerError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// newServerError extracts the {"message": ...} body if present.
func newServerError(resp *http.Response) error {
	se := &ServerError{Status: resp.StatusCode}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload); err == nil {
		se.Message = payload.Message
	}
	return se
}

func (g *RestGateway) Login(ctx context.Context, email, password string) error {
	in := map[string]string{"email": email, "password": password}
	return g.do(ctx, http.MethodPost, "/auth/login", nil, in, nil)
}

func (g *RestGateway) Signup(ctx context.Context, email, password string) error {
	in := map[string]string{"email": email, "password": password}
	return g.do(ctx, http.MethodPost, "/auth/signup", nil, in, nil)
}

func (g *RestGateway) GoogleLogin(ctx context.Context, idToken string) error {
	in := map[string]string{"token": idToken}
	return g.do(ctx, http.MethodPost, "/auth/google-login", nil, in, nil)
}

// VerifyOTP submits the 6-digit code; on success the backend issues the
// session identity and bearer credential.
func (g *RestGateway) VerifyOTP(ctx context.Context, email, otp string) (*models.User, string, error) {
	in := map[string]string{"email": email, "otp": otp}
	var out struct {
		User  *models.User `json:"user"`
		Token string       `json:"token"`
	}
	if err := g.do(ctx, http.MethodPost, "/auth/verify-otp", nil, in, &out); err != nil {
		return nil, "", err
	}
	return out.User, out.Token, nil
}

func (g *RestGateway) ResendOTP(ctx context.Context, email string) error {
	in := map[string]string{"email": email}
	return g.do(ctx, http.MethodPost, "/auth/resend-otp", nil, in, nil)
}

func (g *RestGateway) ForgotPassword(ctx context.Context, email string) error {
	in := map[string]string{"email": email}
	return g.do(ctx, http.MethodPost, "/auth/forgot-password", nil, in, nil)
}

func (g *RestGateway) VerifyResetOTP(ctx context.Context, email, otp string) error {
	in := map[string]string{"email": email, "otp": otp}
	return g.do(ctx, http.MethodPost, "/auth/verify-reset-otp", nil, in, nil)
}

func (g *RestGateway) ResendResetOTP(ctx context.Context, email string) error {
	in := map[string]string{"email": email}
	return g.do(ctx, http.MethodPost, "/auth/resend-reset-otp", nil, in, nil)
}

func (g *RestGateway) ResetPassword(ctx context.Context, email, password string) error {
	in := map[string]string{"email": email, "password": password}
	return g.do(ctx, http.MethodPost, "/auth/reset-password", nil, in, nil)
}

// Blogs lists the public feed. category "all" (any case) and "" omit the
// category parameter; an empty search omits the search parameter.
func (g *RestGateway) Blogs(ctx context.Context, category, search string) ([]models.Blog, error) {
	query := url.Values{}
	if category != "" && !strings.EqualFold(category, "all") {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("search", search)
	}
	var out []models.Blog
	if err := g.do(ctx, http.MethodGet, "/blogs", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *RestGateway) Blog(ctx context.Context, id string) (*models.Blog, error) {
	var out models.Blog
	if err := g.do(ctx, http.MethodGet, "/blogs/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *RestGateway) CreateBlog(ctx context.Context, in CreateBlogInput) (*models.Post, error) {
	var out struct {
		Post *models.Post `json:"post"`
	}
	if err := g.do(ctx, http.MethodPost, "/blogs", nil, in, &out); err != nil {
		return nil, err
	}
	return out.Post, nil
}

func (g *RestGateway) UpdateBlog(ctx context.Context, id string, in CreateBlogInput) (*models.Post, error) {
	var out struct {
		Post *models.Post `json:"post"`
	}
	if err := g.do(ctx, http.MethodPut, "/blogs/"+url.PathEscape(id), nil, in, &out); err != nil {
		return nil, err
	}
	return out.Post, nil
}

func (g *RestGateway) DeleteBlog(ctx context.Context, id string) error {
	return g.do(ctx, http.MethodDelete, "/blogs/"+url.PathEscape(id), nil, nil, nil)
}

func (g *RestGateway) MyPosts(ctx context.Context) ([]models.Post, error) {
	var out struct {
		Posts []models.Post `json:"posts"`
	}
	if err := g.do(ctx, http.MethodGet, "/blogs/my", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

var _ Gateway = (*RestGateway)(nil)
