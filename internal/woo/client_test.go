package woo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blahpunk/shotlist/internal/common"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		Key:     "ck_test",
		Secret:  "cs_test",
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: testConfig("https://shop.example.com")},
		{name: "missing URL", cfg: Config{Key: "k", Secret: "s"}, wantErr: true},
		{name: "URL without scheme", cfg: Config{BaseURL: "shop.example.com", Key: "k", Secret: "s"}, wantErr: true},
		{name: "missing key", cfg: Config{BaseURL: "https://x", Secret: "s"}, wantErr: true},
		{name: "missing secret", cfg: Config{BaseURL: "https://x", Key: "k"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrNotConfigured)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFetchCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "ck_test", user)
		assert.Equal(t, "cs_test", pass)

		assert.Equal(t, "/wp-json/wc/v3/products/categories", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("hide_empty"))

		if r.URL.Query().Get("page") != "1" {
			fmt.Fprint(w, "[]")
			return
		}
		fmt.Fprint(w, `[
			{"id": 1, "name": "Caches", "parent": 0},
			{"id": 2, "name": "Summer", "parent": 1}
		]`)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	cats, err := client.FetchCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, int64(1), cats[0].ID)
	assert.Equal(t, "Caches", cats[0].Name)
	assert.Equal(t, int64(1), cats[1].Parent)
}

func TestFetchProductsPaginates(t *testing.T) {
	// Page 1 is full (100 items), page 2 is short, so exactly two
	// requests are made.
	var pagesServed []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pagesServed = append(pagesServed, page)
		assert.Equal(t, "publish", r.URL.Query().Get("status"))

		type item struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
			Type string `json:"type"`
		}
		var items []item
		if page == "1" {
			for i := 0; i < 100; i++ {
				items = append(items, item{ID: int64(i + 1), Name: fmt.Sprintf("P%d", i+1), Type: "simple"})
			}
		} else if page == "2" {
			items = append(items, item{ID: 101, Name: "P101", Type: "variable"})
		}
		_ = json.NewEncoder(w).Encode(items)
	}))
	defer server.Close()

	var progress []int
	cfg := testConfig(server.URL)
	cfg.PageProgress = func(items int) { progress = append(progress, items) }

	client, err := NewClient(cfg)
	require.NoError(t, err)

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 101)
	assert.Equal(t, []string{"1", "2"}, pagesServed)
	assert.Equal(t, []int{100, 1}, progress)
	assert.True(t, products[100].Variable())
}

func TestFetchVariations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wc/v3/products/42/variations", r.URL.Path)
		if r.URL.Query().Get("page") != "1" {
			fmt.Fprint(w, "[]")
			return
		}
		fmt.Fprint(w, `[
			{"id": 420, "attributes": [{"name": "Color", "option": "Red"}, {"name": "Size", "option": "M"}]}
		]`)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	variations, err := client.FetchVariations(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, variations, 1)
	require.Len(t, variations[0].Attributes, 2)
	assert.Equal(t, "Color", variations[0].Attributes[0].Name)
	assert.Equal(t, "Red", variations[0].Attributes[0].Option)
}

func TestFetchFailsOnNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"code":"woocommerce_rest_cannot_view"}`)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.FetchProducts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFetchFailed)
	assert.Contains(t, err.Error(), "401")
}

func TestNewClientRejectsBadConfig(t *testing.T) {
	_, err := NewClient(Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotConfigured)
}
