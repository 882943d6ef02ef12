package models

import (
	"time"
)

// Snapshot records one import of the static dataset into the store
type Snapshot struct {
	ID             string    `json:"id"`
	Source         string    `json:"source"` // Where the dataset was read from
	WeaponCount    int       `json:"weapon_count"`
	BlueprintCount int       `json:"blueprint_count"` // Includes placeholder slots
	ChangelogCount int       `json:"changelog_count"`
	ImportedAt     time.Time `json:"imported_at"`
}
