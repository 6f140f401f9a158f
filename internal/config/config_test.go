package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultDatabase, cfg.Database)
	require.Equal(t, DefaultListen, cfg.Listen)
	require.Equal(t, DefaultCategories, cfg.Categories)
	require.Nil(t, cfg.Storefront)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
database: /tmp/ids.db
listen: ":9090"
categories:
  - product
  - event
storefront:
  category: product
  option_key: shop_base
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/ids.db", cfg.Database)
	require.Equal(t, ":9090", cfg.Listen)
	require.Equal(t, []string{"product", "event"}, cfg.Categories)
	require.Equal(t, "product", cfg.StorefrontCategory())
	require.Equal(t, "shop_base", cfg.StorefrontOptionKey())
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
categories: [product]
storefront:
  category: product
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultDatabase, cfg.Database)
	require.Equal(t, DefaultListen, cfg.Listen)
	require.Equal(t, DefaultStorefrontOptionKey, cfg.StorefrontOptionKey())
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "categories: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
}

func TestStorefrontAccessors_NoBinding(t *testing.T) {
	cfg := Default()
	require.Empty(t, cfg.StorefrontCategory())
	require.Empty(t, cfg.StorefrontOptionKey())
}
