package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"
)

// Client forwards gateway requests to the core server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

type UpstreamRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     []byte
	UserID   string
}

type UpstreamResponse struct {
	Status      int
	ContentType string
	Location    string
	Body        []byte
}

func NewClient(cfg config.UpstreamConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errs.Wrap(err, "invalid upstream url")
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *Client) Forward(ctx context.Context, in UpstreamRequest) (*UpstreamResponse, error) {
	target := *c.baseURL
	target.Path = c.baseURL.Path + in.Path
	target.RawQuery = in.RawQuery

	var body io.Reader
	if len(in.Body) > 0 {
		body = bytes.NewReader(in.Body)
	}
	req, err := http.NewRequestWithContext(ctx, in.Method, target.String(), body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build upstream request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if in.UserID != "" {
		req.Header.Set(middleware.HeaderUserID, in.UserID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "upstream request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read upstream response")
	}
	return &UpstreamResponse{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Location:    resp.Header.Get("Location"),
		Body:        data,
	}, nil
}
