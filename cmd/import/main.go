package main

import (
	"context"
	"flag"
	"log"

	"github.com/meur/blueprintlabs/internal/catalog"
	"github.com/meur/blueprintlabs/internal/storage"
)

func main() {
	dbPath := flag.String("db", "./blueprints.db", "SQLite database path")
	catalogPath := flag.String("catalog", "./public/weapons.json", "Catalog JSON path")
	changelogPath := flag.String("changelog", "./public/changelog.json", "Changelog JSON path")
	flag.Parse()

	ctx := context.Background()
	src := catalog.FileSource{
		CatalogPath:   *catalogPath,
		ChangelogPath: *changelogPath,
	}

	doc, err := src.Catalog(ctx)
	if err != nil {
		log.Fatalf("Failed to read catalog: %v", err)
	}

	changelog, err := src.Changelog(ctx)
	if err != nil {
		log.Printf("Warning: importing without changelog: %v", err)
	}

	for _, issue := range catalog.Audit(doc) {
		log.Printf("Warning: %s has unknown category code %q", issue.Weapon, issue.Code)
	}

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	snap, err := store.SaveSnapshot(ctx, *catalogPath, doc, changelog)
	if err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}

	rows := catalog.Load(doc)
	log.Printf("✓ Imported snapshot %s: %d weapons, %d blueprint slots, %d rows, %d changelog entries",
		snap.ID, snap.WeaponCount, snap.BlueprintCount, len(rows), snap.ChangelogCount)
}
