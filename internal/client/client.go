// Package client is a typed HTTP client for the to-do service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/peterkahumu/fastapi-todo-project/internal/todo"
)

// Client talks to a running to-do service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New constructs a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx response from the service.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
}

// List fetches todos. A nil firstN fetches the whole collection.
func (c *Client) List(ctx context.Context, firstN *int) ([]todo.Todo, error) {
	path := "/todos"
	if firstN != nil {
		path += "?first_n=" + url.QueryEscape(strconv.Itoa(*firstN))
	}
	var todos []todo.Todo
	if err := c.do(ctx, http.MethodGet, path, nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Get fetches a single todo by id.
func (c *Client) Get(ctx context.Context, id int) (todo.Todo, error) {
	var t todo.Todo
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/todo/%d", id), nil, &t)
	return t, err
}

// Create creates a new todo and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, req todo.CreateRequest) (todo.Todo, error) {
	var t todo.Todo
	err := c.do(ctx, http.MethodPost, "/todos/", req, &t)
	return t, err
}

// Update applies a partial update and returns the updated record.
func (c *Client) Update(ctx context.Context, id int, patch todo.UpdateRequest) (todo.Todo, error) {
	var t todo.Todo
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/todo/%d/", id), patch, &t)
	return t, err
}

// Delete removes a todo and returns its final state.
func (c *Client) Delete(ctx context.Context, id int) (todo.Todo, error) {
	var t todo.Todo
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/todo/%d/", id), nil, &t)
	return t, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeAPIError extracts the {"detail": ...} body. The detail is a
// string for plain errors and a list of field errors for 422.
func decodeAPIError(resp *http.Response) error {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	apiErr := &APIError{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Detail) == 0 {
		apiErr.Detail = resp.Status
		return apiErr
	}

	var msg string
	if err := json.Unmarshal(body.Detail, &msg); err == nil {
		apiErr.Detail = msg
		return apiErr
	}

	var fields []struct {
		Path    string `json:"path"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Detail, &fields); err == nil {
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			if f.Path != "" {
				msgs = append(msgs, f.Path+": "+f.Message)
				continue
			}
			msgs = append(msgs, f.Message)
		}
		apiErr.Detail = strings.Join(msgs, "; ")
		return apiErr
	}

	apiErr.Detail = string(body.Detail)
	return apiErr
}
