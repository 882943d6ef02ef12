package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/meur/blueprintlabs/internal/config"
	"github.com/meur/blueprintlabs/internal/models"
	"github.com/meur/blueprintlabs/internal/preview"
	"github.com/meur/blueprintlabs/internal/storage"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{StaticDir: dir},
		Catalog: config.CatalogConfig{
			Source:        config.SourceFile,
			CatalogPath:   filepath.Join(dir, "weapons.json"),
			ChangelogPath: filepath.Join(dir, "changelog.json"),
			DBPath:        filepath.Join(dir, "blueprints.db"),
		},
		Preview: config.PreviewConfig{Extensions: []string{".png"}},
	}
}

func TestBuildFileSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "weapons.json"),
		`{"Weapons":[{"Name":"RAM-7","Category":"0","Blueprints":[{"Name":"Fire Tiger","status":"RELEASED","Pool":"1"}]}]}`)
	writeFile(t, filepath.Join(dir, "changelog.json"), `[{"version":"1.2.0","date":"2025-03-01","changes":["Pools"]}]`)
	writeFile(t, filepath.Join(dir, "images", "ram-7", "Fire Tiger.png"), "png")

	c, err := Build(context.Background(), testConfig(dir), zap.NewNop())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer c.Close()

	if len(c.Session.Rows()) != 1 || c.Session.Version() != "1.2.0" {
		t.Fatalf("session rows = %v, version %q", c.Session.Rows(), c.Session.Version())
	}
	if c.Store != nil {
		t.Error("file source opened a store")
	}

	res, err := c.Resolver.Resolve(context.Background(), c.Prober, c.Session.Rows()[0].ImageBase)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.State.Phase != preview.Found {
		t.Errorf("preview phase = %v, attempts %v", res.State.Phase, res.Attempts)
	}
}

func TestBuildMissingFilesDegrades(t *testing.T) {
	c, err := Build(context.Background(), testConfig(t.TempDir()), zap.NewNop())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer c.Close()

	if len(c.Session.Rows()) != 0 || len(c.Session.Changelog()) != 0 {
		t.Errorf("expected empty session, got %d rows", len(c.Session.Rows()))
	}
}

func TestBuildSQLiteSource(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Catalog.Source = config.SourceSQLite

	store, err := storage.New(cfg.Catalog.DBPath)
	if err != nil {
		t.Fatal(err)
	}
	doc := &models.CatalogDocument{Weapons: []models.WeaponRecord{
		{Name: "Jackal PDW", Category: "1", Blueprints: []models.BlueprintRecord{{Name: "Night Shift", Status: "UNRELEASED", Pool: "2"}}},
	}}
	if _, err := store.SaveSnapshot(context.Background(), "test", doc, nil); err != nil {
		t.Fatal(err)
	}
	store.Close()

	c, err := Build(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer c.Close()

	if c.Store == nil {
		t.Fatal("sqlite source did not keep the store")
	}
	rows := c.Session.Rows()
	if len(rows) != 1 || rows[0].Category != "SMG" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestBuildRejectsBadInput(t *testing.T) {
	if _, err := Build(context.Background(), nil, zap.NewNop()); err == nil {
		t.Error("nil config accepted")
	}
	cfg := testConfig(t.TempDir())
	cfg.Catalog.Source = "ftp"
	if _, err := Build(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Error("unknown source accepted")
	}
}
