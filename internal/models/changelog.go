package models

// ChangelogEntry is one release note from changelog.json
type ChangelogEntry struct {
	Version string   `json:"version"`
	Date    string   `json:"date"`
	Changes []string `json:"changes"`
	Author  string   `json:"Author,omitempty"`
}
