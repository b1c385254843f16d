package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"skills-api/internal/domain"
)

// Client talks to the skills API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// APIError is a non-2xx reply. Message is the server's {error} text when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) FetchThemes(ctx context.Context) ([]domain.Theme, error) {
	themes := []domain.Theme{}
	if err := c.do(ctx, http.MethodGet, "/themes", nil, &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

func (c *Client) FetchSkills(ctx context.Context) ([]domain.Skill, error) {
	skills := []domain.Skill{}
	if err := c.do(ctx, http.MethodGet, "/skills", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// CreateSkill posts a new skill and returns the stored row.
func (c *Client) CreateSkill(ctx context.Context, skill string, level int, themeID int64) (*domain.Skill, error) {
	in := domain.CreateSkillInput{Skill: &skill, Level: &level, ThemeID: &themeID}
	var out struct {
		Message string       `json:"message"`
		Data    domain.Skill `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/skills", in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) CreateTheme(ctx context.Context, name string) (*domain.Theme, error) {
	in := domain.ThemeInput{Name: &name}
	var out struct {
		Message string       `json:"message"`
		Data    domain.Theme `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/themes", in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dst interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}
