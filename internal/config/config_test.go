package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("IMAGE_EXTENSIONS", "")
	t.Setenv("SEARCH_DEBOUNCE_MS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Catalog.Source != SourceFile {
		t.Errorf("Source = %q", cfg.Catalog.Source)
	}
	if got := cfg.Preview.Extensions; len(got) != 3 || got[0] != ".jpg" || got[2] != ".png" {
		t.Errorf("Extensions = %v", got)
	}
	if cfg.Filter.SearchDelay != 300*time.Millisecond {
		t.Errorf("SearchDelay = %v", cfg.Filter.SearchDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "SQLite")
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("IMAGE_EXTENSIONS", ".jpg")
	t.Setenv("SEARCH_DEBOUNCE_MS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Catalog.Source != SourceSQLite || cfg.Catalog.DBPath != "/tmp/x.db" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if len(cfg.Preview.Extensions) != 1 || cfg.Filter.SearchDelay != 0 {
		t.Errorf("Preview = %+v, Filter = %+v", cfg.Preview, cfg.Filter)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Catalog: CatalogConfig{Source: SourceFile, CatalogPath: "weapons.json"},
			Preview: PreviewConfig{Extensions: []string{".jpg"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown source", func(c *Config) { c.Catalog.Source = "ftp" }, true},
		{"http without url", func(c *Config) { c.Catalog.Source = SourceHTTP }, true},
		{"http with url", func(c *Config) { c.Catalog.Source = SourceHTTP; c.Catalog.CatalogURL = "http://x/weapons.json" }, false},
		{"no extensions", func(c *Config) { c.Preview.Extensions = nil }, true},
		{"extension without dot", func(c *Config) { c.Preview.Extensions = []string{"png"} }, true},
		{"negative delay", func(c *Config) { c.Filter.SearchDelay = -time.Second }, true},
	}
	for _, tt := range tests {
		c := valid()
		tt.mutate(c)
		if err := c.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
