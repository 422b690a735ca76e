// Package client is a typed client for the seminary HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Error is a non-2xx answer of the API.
type Error struct {
	StatusCode int
	Message    string `json:"error"`
	Code       string `json:"code"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status of an API error, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	token      string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithSession restores the token from s and keeps s in sync on login
// and logout.
func WithSession(s *Session) Option {
	return func(c *Client) {
		c.session = s
		if s != nil {
			c.token = s.Token
		}
	}
}

// New builds a client for the API rooted at baseURL, e.g.
// "http://localhost:5000/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login stores the returned token on the client and in the session, if any.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	var resp AuthResponse
	body := map[string]string{"username": username, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/users/login", body, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token
	if c.session != nil {
		if err := c.session.Save(resp.Token, resp.User); err != nil {
			return &resp, errors.Wrap(err, "failed to save session")
		}
	}
	return &resp, nil
}

// Logout forgets the token locally. Tokens are not revoked server side.
func (c *Client) Logout() error {
	c.token = ""
	if c.session != nil {
		return c.session.Clear()
	}
	return nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListLectures(ctx context.Context, opts ListOptions) (*LecturePage, error) {
	q := url.Values{}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(opts.PageSize))
	}
	if opts.SortBy != "" {
		q.Set("sortBy", opts.SortBy)
	}

	path := "/lectures"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var page LecturePage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetLecture(ctx context.Context, id string) (*Lecture, error) {
	var lecture Lecture
	if err := c.doJSON(ctx, http.MethodGet, "/lectures/"+url.PathEscape(id), nil, &lecture); err != nil {
		return nil, err
	}
	return &lecture, nil
}

func (c *Client) CreateLecture(ctx context.Context, form LectureForm, files ...File) (*Lecture, error) {
	var lecture Lecture
	if err := c.doMultipart(ctx, http.MethodPost, "/lectures", form, files, &lecture); err != nil {
		return nil, err
	}
	return &lecture, nil
}

// UpdateLecture changes the non-empty fields of form and appends files
// to the lecture's materials.
func (c *Client) UpdateLecture(ctx context.Context, id string, form LectureForm, files ...File) (*Lecture, error) {
	var lecture Lecture
	if err := c.doMultipart(ctx, http.MethodPut, "/lectures/"+url.PathEscape(id), form, files, &lecture); err != nil {
		return nil, err
	}
	return &lecture, nil
}

func (c *Client) DeleteLecture(ctx context.Context, id string) error {
	var resp DeleteResponse
	return c.doJSON(ctx, http.MethodDelete, "/lectures/"+url.PathEscape(id), nil, &resp)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, form LectureForm, files []File, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range form.fields() {
		if field[1] == "" {
			continue
		}
		if err := w.WriteField(field[0], field[1]); err != nil {
			return errors.Wrap(err, "failed to write form field")
		}
	}

	for _, f := range files {
		part, err := w.CreateFormFile("materials", f.Name)
		if err != nil {
			return errors.Wrap(err, "failed to create form file")
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return errors.Wrapf(err, "failed to read %s", f.Name)
		}
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to finish multipart body")
	}
	return c.do(ctx, method, path, &buf, w.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{StatusCode: resp.StatusCode}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if json.Unmarshal(data, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
			if apiErr.Message == "" {
				apiErr.Message = http.StatusText(resp.StatusCode)
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}
