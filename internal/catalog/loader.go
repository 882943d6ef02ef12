package catalog

import (
	"regexp"
	"strings"

	"github.com/meur/blueprintlabs/internal/models"
)

// UnknownCategory is shown for category codes missing from the table
const UnknownCategory = "Unknown"

// ImageRoot is the URL prefix under which preview images live
const ImageRoot = "/images/"

var categoryCodes = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

var categoryMap = map[string]string{
	"0": "Assault Rifle",
	"1": "SMG",
	"2": "Shotgun",
	"3": "LMG",
	"4": "Marksman Rifle",
	"5": "Sniper",
	"6": "Pistol",
	"7": "Launchers",
	"8": "Specials",
	"9": "Melee",
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CategoryLabel translates a numeric category code
func CategoryLabel(code string) (string, bool) {
	label, ok := categoryMap[code]
	if !ok {
		return UnknownCategory, false
	}
	return label, true
}

// Categories returns the known labels in code order
func Categories() []string {
	labels := make([]string, 0, len(categoryCodes))
	for _, code := range categoryCodes {
		labels = append(labels, categoryMap[code])
	}
	return labels
}

// NormalizeWeaponName lowercases a weapon name and replaces each whitespace
// run with a single hyphen. The result is the weapon's image directory.
func NormalizeWeaponName(name string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(name), "-")
}

// ImageBase builds the extensionless preview path of a blueprint
func ImageBase(weapon, blueprint string) string {
	return ImageRoot + NormalizeWeaponName(weapon) + "/" + blueprint
}

// Load flattens a catalog document into display rows, in document order.
// Placeholder slots are skipped.
func Load(doc *models.CatalogDocument) []models.Row {
	rows := []models.Row{}
	if doc == nil {
		return rows
	}

	for _, weapon := range doc.Weapons {
		category, _ := CategoryLabel(weapon.Category)
		for _, bp := range weapon.Blueprints {
			if bp.IsPlaceholder() {
				continue
			}
			rows = append(rows, models.Row{
				Weapon:    weapon.Name,
				Category:  category,
				Blueprint: bp.Name,
				Status:    bp.Status,
				Pool:      bp.Pool,
				ImageBase: ImageBase(weapon.Name, bp.Name),
			})
		}
	}
	return rows
}

// Issue is a data-quality problem found in a catalog document
type Issue struct {
	Weapon string
	Code   string
}

// Audit reports weapons whose category code is not in the table
func Audit(doc *models.CatalogDocument) []Issue {
	var issues []Issue
	if doc == nil {
		return issues
	}
	for _, weapon := range doc.Weapons {
		if _, ok := CategoryLabel(weapon.Category); !ok {
			issues = append(issues, Issue{Weapon: weapon.Name, Code: weapon.Category})
		}
	}
	return issues
}

// CountBlueprints returns every blueprint entry, placeholders included
func CountBlueprints(doc *models.CatalogDocument) int {
	if doc == nil {
		return 0
	}
	n := 0
	for _, weapon := range doc.Weapons {
		n += len(weapon.Blueprints)
	}
	return n
}
