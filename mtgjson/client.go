package mtgjson

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

const DefaultAllSetsURL = "https://mtgjson.com/json/AllSets.json"

type Client struct {
	client *retryablehttp.Client
}

// NewClient returns a Client retrying failed downloads.
func NewClient() *Client {
	c := Client{}
	c.client = retryablehttp.NewClient()
	c.client.HTTPClient = cleanhttp.DefaultPooledClient()
	c.client.Logger = nil
	// The feed is a single large file, give the server some room
	c.client.RetryWaitMin = 2 * time.Second
	c.client.RetryWaitMax = 30 * time.Second
	c.client.RetryMax = 5
	return &c
}

// Open starts downloading the feed at link, the caller must close the body.
func (c *Client) Open(ctx context.Context, link string) (io.ReadCloser, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, link)
	}

	return resp.Body, nil
}
