package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wolfdeveloper/wolfdevlovers/internal/client/models"
	"github.com/wolfdeveloper/wolfdevlovers/internal/common"
	"github.com/wolfdeveloper/wolfdevlovers/internal/netx"
)

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client against baseURL. The timeout applies to the
// whole request (connect, send, receive).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) endpoint(parts ...string) string {
	escaped := make([]string, 0, len(parts))
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// do runs the request and decodes the JSON response into a User. Any
// non-2xx status is an error carrying the response body.
func (c *HTTPClient) do(req *http.Request) (*models.User, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("server returned %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &user, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, code string) (*models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("user", code), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *HTTPClient) InsertUser(ctx context.Context, user models.User) (*models.User, error) {
	body, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("user"), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *HTTPClient) UploadProfile(ctx context.Context, code, filename string, png []byte) (*models.User, error) {
	return c.uploadTo(ctx, c.endpoint("user", code, "profile"), filename, png)
}

func (c *HTTPClient) UploadBackground(ctx context.Context, code, filename string, png []byte) (*models.User, error) {
	return c.uploadTo(ctx, c.endpoint("user", code, "background"), filename, png)
}

func (c *HTTPClient) UploadLoverImage(ctx context.Context, loverID int64, filename string, png []byte) (*models.User, error) {
	return c.uploadTo(ctx, c.endpoint("lover", strconv.FormatInt(loverID, 10), "image"), filename, png)
}

func (c *HTTPClient) uploadTo(ctx context.Context, endpoint, filename string, png []byte) (*models.User, error) {
	body, contentType, err := netx.MultipartFile(common.DocumentFieldName, filename, "image/png", png)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req)
}
