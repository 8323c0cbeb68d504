// Package woo provides a client for the WooCommerce REST API, implementing
// the catalog source the sync pipeline pulls from.
package woo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/blahpunk/shotlist/internal/common"
	"github.com/blahpunk/shotlist/internal/model"
)

const (
	apiBase = "/wp-json/wc/v3/"
	perPage = 100
)

// Config holds WooCommerce API configuration.
type Config struct {
	// BaseURL is the store root, e.g. https://shop.example.com.
	BaseURL string
	// Key and Secret are the REST API consumer credentials (basic auth).
	Key    string
	Secret string
	// PageProgress, when set, is called after each fetched page with the
	// number of items on it.
	PageProgress func(items int)
}

// Validate ensures all required fields are present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: store URL is required", common.ErrNotConfigured)
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("%w: store URL must start with http:// or https://", common.ErrNotConfigured)
	}
	if c.Key == "" {
		return fmt.Errorf("%w: consumer key is required", common.ErrNotConfigured)
	}
	if c.Secret == "" {
		return fmt.Errorf("%w: consumer secret is required", common.ErrNotConfigured)
	}
	return nil
}

// Client implements the service.CatalogSource interface against a
// WooCommerce store.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new WooCommerce client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 40 * time.Second,
		},
		logger: slog.Default().With("component", "woo"),
	}, nil
}

// Wire shapes. Only the fields the planner needs are decoded.
type wooCategory struct {
	Name   string `json:"name"`
	ID     int64  `json:"id"`
	Parent int64  `json:"parent"`
}

type wooCategoryRef struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

type wooAttribute struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type wooProduct struct {
	Name       string           `json:"name"`
	Type       string           `json:"type"`
	Categories []wooCategoryRef `json:"categories"`
	Attributes []wooAttribute   `json:"attributes"`
	ID         int64            `json:"id"`
}

type wooVariationAttribute struct {
	Name   string `json:"name"`
	Option string `json:"option"`
}

type wooVariation struct {
	Attributes []wooVariationAttribute `json:"attributes"`
	ID         int64                   `json:"id"`
}

// FetchCategories retrieves every product category, including empty ones.
func (c *Client) FetchCategories(ctx context.Context) ([]model.RawCategory, error) {
	params := url.Values{"hide_empty": {"false"}}
	raw, err := fetchPaged[wooCategory](ctx, c, "products/categories", params)
	if err != nil {
		return nil, err
	}

	cats := make([]model.RawCategory, 0, len(raw))
	for _, wc := range raw {
		cats = append(cats, model.RawCategory{ID: wc.ID, Name: wc.Name, Parent: wc.Parent})
	}
	return cats, nil
}

// FetchProducts retrieves every published product.
func (c *Client) FetchProducts(ctx context.Context) ([]model.RawProduct, error) {
	params := url.Values{"status": {"publish"}}
	raw, err := fetchPaged[wooProduct](ctx, c, "products", params)
	if err != nil {
		return nil, err
	}

	products := make([]model.RawProduct, 0, len(raw))
	for _, wp := range raw {
		p := model.RawProduct{
			ID:   wp.ID,
			Name: wp.Name,
			Type: wp.Type,
		}
		for _, ref := range wp.Categories {
			p.Categories = append(p.Categories, model.RawCategoryRef{ID: ref.ID, Name: ref.Name})
		}
		for _, attr := range wp.Attributes {
			p.Attributes = append(p.Attributes, model.RawAttribute{Name: attr.Name, Options: attr.Options})
		}
		products = append(products, p)
	}
	return products, nil
}

// FetchVariations retrieves the variations of a variable product.
func (c *Client) FetchVariations(ctx context.Context, productID int64) ([]model.RawVariation, error) {
	route := fmt.Sprintf("products/%d/variations", productID)
	raw, err := fetchPaged[wooVariation](ctx, c, route, nil)
	if err != nil {
		return nil, err
	}

	variations := make([]model.RawVariation, 0, len(raw))
	for _, wv := range raw {
		v := model.RawVariation{ID: wv.ID}
		for _, attr := range wv.Attributes {
			v.Attributes = append(v.Attributes, model.RawVariationAttribute{Name: attr.Name, Option: attr.Option})
		}
		variations = append(variations, v)
	}
	return variations, nil
}

// fetchPaged GETs a route page by page until a short page, accumulating
// every item. Non-200 responses abort with the status and body.
func fetchPaged[T any](ctx context.Context, c *Client, route string, params url.Values) ([]T, error) {
	var out []T
	for page := 1; ; page++ {
		q := url.Values{}
		for k, vs := range params {
			q[k] = vs
		}
		q.Set("per_page", strconv.Itoa(perPage))
		q.Set("page", strconv.Itoa(page))

		endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + apiBase + route + "?" + q.Encode()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request for %s: %w", route, err)
		}
		req.SetBasicAuth(c.cfg.Key, c.cfg.Secret)

		c.logger.Debug("Fetching store page", "route", route, "page", page)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: GET %s: %v", common.ErrFetchFailed, route, err)
		}

		items, err := decodePage[T](resp, route)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}
		out = append(out, items...)
		if c.cfg.PageProgress != nil {
			c.cfg.PageProgress(len(items))
		}
		if len(items) < perPage {
			break
		}
	}
	return out, nil
}

func decodePage[T any](resp *http.Response, route string) ([]T, error) {
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: GET %s returned %d: %s",
			common.ErrFetchFailed, route, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var items []T
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", route, err)
	}
	return items, nil
}
