package usecase

import (
	"context"
	"errors"
	"testing"

	"lokapasar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRawProductIdentityFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  entity.RawProduct
		want string
	}{
		{"primary id wins", entity.RawProduct{ID: "p-1", ProductID: "alt-1", SKU: "sku-1"}, "p-1"},
		{"alternate id next", entity.RawProduct{ProductID: "alt-1", SKU: "sku-1"}, "alt-1"},
		{"sku last", entity.RawProduct{SKU: "sku-1"}, "sku-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapRawProduct(tt.raw).ID)
		})
	}

	// no identity at all still yields a usable placeholder
	p := mapRawProduct(entity.RawProduct{Name: "anon"})
	assert.Contains(t, p.ID, "prod-")
}

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"number", 129.5, 129.5},
		{"int", 80, 80},
		{"numeric string", "45", 45},
		{"padded string", " 119.90 ", 119.9},
		{"garbage string", "free!!", 0},
		{"nil", nil, 0},
		{"wrong type", []string{"x"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coercePrice(tt.in))
		})
	}
}

func TestMapRawProductDefaults(t *testing.T) {
	p := mapRawProduct(entity.RawProduct{ID: "p-1", Name: "Lamp", Status: "refurbished"})

	assert.Equal(t, entity.ConditionNew, p.Condition, "any status other than used maps to new")
	assert.NotNil(t, p.Images)
	assert.Empty(t, p.Images)
	assert.Nil(t, p.Rating)

	used := mapRawProduct(entity.RawProduct{ID: "p-2", Status: "used"})
	assert.Equal(t, entity.ConditionUsed, used.Condition)
}

func TestMergeCatalogsRemoteWins(t *testing.T) {
	remote := []entity.Product{
		{ID: "a", Name: "Remote A"},
		{ID: "b", Name: "Remote B"},
	}
	fallback := []entity.Product{
		{ID: "b", Name: "Fallback B"},
		{ID: "c", Name: "Fallback C"},
	}

	merged := mergeCatalogs(remote, fallback)

	require.Len(t, merged, 3)
	assert.Equal(t, "Remote A", merged[0].Name)
	assert.Equal(t, "Remote B", merged[1].Name, "remote record wins the shared identity")
	assert.Equal(t, "Fallback C", merged[2].Name)
}

func TestMergeCatalogsIdempotentOnIdentity(t *testing.T) {
	ds := []entity.Product{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	merged := mergeCatalogs(ds, ds)

	assert.Equal(t, ds, merged)
}

type stubProvider struct {
	raws []entity.RawProduct
	err  error
}

func (s *stubProvider) FetchCatalog(ctx context.Context) ([]entity.RawProduct, error) {
	return s.raws, s.err
}

func TestLoadMergedCatalogSubstitutesFallback(t *testing.T) {
	fallback := []entity.Product{{ID: "fb-1", Name: "Fallback"}}
	provider := &stubProvider{err: errors.New("connection refused")}

	catalog, usedFallback := loadMergedCatalog(context.Background(), provider, fallback)

	assert.True(t, usedFallback)
	assert.Equal(t, fallback, catalog)
}

func TestLoadMergedCatalogMapsAndMerges(t *testing.T) {
	fallback := []entity.Product{{ID: "fb-1", Name: "Fallback"}}
	provider := &stubProvider{raws: []entity.RawProduct{
		{ID: "fb-1", Name: "Remote copy", Price: "10"},
		{SKU: "sku-9", Name: "Remote only", Price: 25.0},
	}}

	catalog, usedFallback := loadMergedCatalog(context.Background(), provider, fallback)

	require.False(t, usedFallback)
	require.Len(t, catalog, 2)
	assert.Equal(t, "Remote copy", catalog[0].Name)
	assert.Equal(t, 10.0, catalog[0].Price)
	assert.Equal(t, "sku-9", catalog[1].ID)
}
