package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const askPath = "/api/assistant/ask"

type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

func New(client *http.Client, baseURL, token string) *Client {
	return &Client{
		client:  client,
		baseURL: baseURL,
		token:   token,
	}
}

func (c *Client) Ask(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, errors.Wrap(err, "could not encode request")
	}

	hr, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+askPath, bytes.NewReader(body))
	if err != nil {
		return Response{}, errors.Wrap(err, "could not create request")
	}
	hr.Header.Set("Content-Type", "application/json")
	hr.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.client.Do(hr)
	if err != nil {
		return Response{}, errors.Wrap(err, "could not reach assistant")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Response{}, errors.Errorf("assistant returned %s", res.Status)
	}

	var resp Response
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return Response{}, errors.Wrap(err, "could not decode response")
	}
	return resp, nil
}

// CachedResponse is a reply held by a CachedClient, with its last use time
// for pruning.
type CachedResponse struct {
	Response
	Used time.Time
}

// CachedClient memoizes replies per (session, prompt) so that re-rendering a
// message (expand, minimize) does not hit the API again.
type CachedClient struct {
	*Client

	mu    sync.Mutex
	cache map[string]*CachedResponse
}

func WithCache(c *Client) *CachedClient {
	return &CachedClient{
		Client: c,
		cache:  map[string]*CachedResponse{},
	}
}

func (c *CachedClient) Ask(ctx context.Context, req Request) (Response, error) {
	key := req.SessionID + "\x00" + req.Prompt

	c.mu.Lock()
	if hit, ok := c.cache[key]; ok {
		hit.Used = time.Now()
		c.mu.Unlock()
		return hit.Response, nil
	}
	c.mu.Unlock()

	resp, err := c.Client.Ask(ctx, req)
	if err != nil {
		return Response{}, err
	}

	c.mu.Lock()
	c.cache[key] = &CachedResponse{Response: resp, Used: time.Now()}
	c.mu.Unlock()
	return resp, nil
}

// WithCache runs fn while holding the cache lock. fn may mutate the map.
func (c *CachedClient) WithCache(fn func(cache map[string]*CachedResponse)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.cache)
}

// Len reports the number of cached replies.
func (c *CachedClient) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// Prune drops cached replies not used within age and reports how many were
// removed.
func (c *CachedClient) Prune(age time.Duration) int {
	cutoff := time.Now().Add(-age)

	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for k, v := range c.cache {
		if v.Used.Before(cutoff) {
			delete(c.cache, k)
			n++
		}
	}
	return n
}
