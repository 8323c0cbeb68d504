package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blahpunk/shotlist/internal/model"
)

// fakeStorage records the last committed snapshot.
type fakeStorage struct {
	snap       *model.CatalogSnapshot
	replaceErr error
	replaces   int
}

func (f *fakeStorage) ReplaceCatalog(_ context.Context, snap *model.CatalogSnapshot) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaces++
	f.snap = snap
	return nil
}

func (f *fakeStorage) LoadCatalog(_ context.Context) (*model.CatalogSnapshot, error) {
	return f.snap, nil
}

func (f *fakeStorage) ReplaceRoster(_ context.Context, _ []model.Shot, _ map[string]struct{}) error {
	return nil
}

func (f *fakeStorage) LoadRoster(_ context.Context) ([]model.Shot, map[string]struct{}, error) {
	return nil, nil, nil
}

func (f *fakeStorage) Migrate(_ context.Context) error { return nil }
func (f *fakeStorage) Close() error                    { return nil }

func TestSyncFullPipeline(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{
		categories: []model.RawCategory{
			{ID: 1, Name: "Caches"},
			{ID: 10, Name: "Summer", Parent: 1},
			{ID: 11, Name: "Beach", Parent: 10},
		},
		products: []model.RawProduct{
			{
				ID: 100, Name: "Towel", Type: model.TypeVariable,
				Categories: []model.RawCategoryRef{{ID: 11, Name: "Beach"}},
			},
			{
				ID: 101, Name: "Mug", Type: "simple",
				Categories: []model.RawCategoryRef{{ID: 99, Name: "Misc"}},
			},
		},
		variations: map[int64][]model.RawVariation{
			100: {
				{Attributes: []model.RawVariationAttribute{{Name: "Color", Option: "Red"}}},
				{Attributes: []model.RawVariationAttribute{{Name: "Color", Option: "Blue"}}},
			},
		},
	}
	store := &fakeStorage{}

	stats, err := NewSyncer(source, store).Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Products)
	assert.Equal(t, 1, stats.Caches)
	assert.Equal(t, 1, stats.Themes)
	assert.False(t, stats.SyncedAt.IsZero())

	require.NotNil(t, store.snap)
	require.Len(t, store.snap.Products, 2)

	towel := store.snap.Products[0]
	assert.Equal(t, []string{"Red", "Blue"}, towel.Colors)
	assert.Equal(t, "Beach", towel.ThemeName)
	assert.Equal(t, "Summer", towel.CacheName)

	mug := store.snap.Products[1]
	assert.Equal(t, []string{""}, mug.Colors)
	assert.Empty(t, mug.ThemeName)
	assert.Equal(t, model.UnassignedCache, mug.CacheLabel())
}

func TestSyncAbortsBeforeCommitOnFetchError(t *testing.T) {
	ctx := context.Background()
	previous := &model.CatalogSnapshot{Products: []model.Product{{ID: 1, Name: "Old"}}}

	tests := []struct {
		source *fakeSource
		name   string
	}{
		{
			name:   "categories fetch fails",
			source: &fakeSource{categoriesErr: errors.New("network down")},
		},
		{
			name: "products fetch fails",
			source: &fakeSource{
				categories:  []model.RawCategory{{ID: 1, Name: "Caches"}},
				productsErr: errors.New("network down"),
			},
		},
		{
			name: "variations fetch fails",
			source: &fakeSource{
				categories: []model.RawCategory{{ID: 1, Name: "Caches"}},
				products: []model.RawProduct{
					{ID: 100, Name: "Towel", Type: model.TypeVariable},
				},
				variationsErr: errors.New("network down"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStorage{snap: previous}

			_, err := NewSyncer(tt.source, store).Sync(ctx)
			require.Error(t, err)

			// The previously committed snapshot stays authoritative.
			assert.Zero(t, store.replaces)
			assert.Same(t, previous, store.snap)
		})
	}
}

func TestSyncEmptyHierarchyIsNotAnError(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{
		categories: []model.RawCategory{{ID: 1, Name: "Clothing"}},
		products: []model.RawProduct{
			{ID: 100, Name: "Towel", Type: "simple"},
		},
	}
	store := &fakeStorage{}

	stats, err := NewSyncer(source, store).Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Caches)
	assert.Equal(t, 0, stats.Themes)
	assert.Equal(t, model.UnassignedCache, store.snap.Products[0].CacheLabel())
}
