package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alyoshka-app/alyoshka/internal/domain/almanac"
)

// Client fetches already-resolved views from the remote content API. Any
// failure here makes the resolver fall through to local fixtures.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Home fetches the resolved home view for a date.
func (c *Client) Home(ctx context.Context, date, region string) (almanac.HomeView, error) {
	params := url.Values{}
	params.Set("date", date)
	if region != "" {
		params.Set("region", region)
	}
	var view almanac.HomeView
	if err := c.getJSON(ctx, "/home?"+params.Encode(), &view); err != nil {
		return almanac.HomeView{}, err
	}
	return view, nil
}

// Month fetches the resolved calendar view for an ISO month.
func (c *Client) Month(ctx context.Context, month string) (almanac.CalendarView, error) {
	params := url.Values{}
	params.Set("month", month)
	var view almanac.CalendarView
	if err := c.getJSON(ctx, "/lunar?"+params.Encode(), &view); err != nil {
		return almanac.CalendarView{}, err
	}
	return view, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build remote request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("remote request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode remote response: %w", err)
	}
	return nil
}

var _ almanac.RemoteClient = (*Client)(nil)
