// Package remote baixa datasets publicados em http(s).
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights/internal/config"
)

// ErrUnexpectedStatus indica que o servidor respondeu algo diferente de 200
var ErrUnexpectedStatus = errors.New("unexpected response status")

type Client struct {
	httpClient  *http.Client
	accessToken string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Dataset.FetchTimeout,
		},
		accessToken: cfg.Dataset.AccessToken,
	}
}

// IsURL indica se o caminho do dataset aponta para http(s)
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Open faz o GET do CSV; quem chama fecha o corpo
func (c *Client) Open(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	endpoint, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "remote: invalid dataset URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "remote: build request")
	}

	req.Header.Set("Accept", "text/csv")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "remote: GET %s", endpoint.Redacted())
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: %s", ErrUnexpectedStatus, endpoint.Redacted(), resp.Status)
	}

	return resp.Body, nil
}
