package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mehrshaddarzi/seqid/internal/store"
)

func newStorefrontService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc, err := New(st, Options{
		Categories:         []string{"product", "event"},
		StorefrontCategory: "product",
	})
	require.NoError(t, err)
	return svc, st
}

func TestBasePath_DefaultsToCategoryName(t *testing.T) {
	svc, _ := newStorefrontService(t)

	base, ok, err := svc.BasePath(context.Background(), "event")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "event", base)
}

func TestBasePath_UnknownCategory(t *testing.T) {
	svc, _ := newStorefrontService(t)

	_, ok, err := svc.BasePath(context.Background(), "page")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBasePath_StorefrontOverride(t *testing.T) {
	svc, st := newStorefrontService(t)

	// Without an override the storefront category behaves like any other.
	base, ok, err := svc.BasePath(context.Background(), "product")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "product", base)

	// The external collaborator publishes its base path.
	require.NoError(t, st.SetSetting(context.Background(), "storefront_base_path", "shop"))

	base, ok, err = svc.BasePath(context.Background(), "product")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "shop", base)

	// Only the one configured category is overridable.
	base, _, err = svc.BasePath(context.Background(), "event")
	require.NoError(t, err)
	require.Equal(t, "event", base)
}

func TestBasePath_NormalizesOverride(t *testing.T) {
	svc, st := newStorefrontService(t)

	require.NoError(t, st.SetSetting(context.Background(), "storefront_base_path", " /Shop/ "))

	base, _, err := svc.BasePath(context.Background(), "product")
	require.NoError(t, err)
	require.Equal(t, "shop", base)
}

func TestBasePath_EmptyOverrideFallsBack(t *testing.T) {
	svc, st := newStorefrontService(t)

	require.NoError(t, st.SetSetting(context.Background(), "storefront_base_path", " / "))

	base, _, err := svc.BasePath(context.Background(), "product")
	require.NoError(t, err)
	require.Equal(t, "product", base)
}

func TestCategoryForBasePath(t *testing.T) {
	svc, st := newStorefrontService(t)

	category, found, err := svc.CategoryForBasePath(context.Background(), "event")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "event", category)

	require.NoError(t, st.SetSetting(context.Background(), "storefront_base_path", "shop"))

	category, found, err = svc.CategoryForBasePath(context.Background(), "shop")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "product", category)

	// The override shadows the category's own name.
	_, found, err = svc.CategoryForBasePath(context.Background(), "product")
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = svc.CategoryForBasePath(context.Background(), "unknown")
	require.NoError(t, err)
	require.False(t, found)
}
