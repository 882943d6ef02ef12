package models

// CatalogDocument is the top-level shape of weapons.json
type CatalogDocument struct {
	Weapons []WeaponRecord `json:"Weapons"`
}

// WeaponRecord is a weapon as it appears in the source dataset
type WeaponRecord struct {
	Name       string            `json:"Name"`
	Category   string            `json:"Category"` // Numeric code, "0".."9"
	Blueprints []BlueprintRecord `json:"Blueprints"`
}

// BlueprintRecord is a single pool slot of a weapon
type BlueprintRecord struct {
	Name   string `json:"Name"`
	Status string `json:"status"`
	Pool   string `json:"Pool"`
}

// PlaceholderName marks an unfilled pool slot
const PlaceholderName = "NOTHING"

// IsPlaceholder reports whether the slot holds no real blueprint
func (b BlueprintRecord) IsPlaceholder() bool {
	return b.Name == "" || b.Name == PlaceholderName
}

// Row is one displayable blueprint, flattened from its weapon
type Row struct {
	Weapon    string `json:"weapon" csv:"weapon"`
	Category  string `json:"category" csv:"category"` // Human-readable label
	Blueprint string `json:"blueprint" csv:"blueprint"`
	Status    string `json:"status" csv:"status"`
	Pool      string `json:"pool" csv:"pool"`
	ImageBase string `json:"imageBase" csv:"image_base"` // Extensionless preview path
}

// RowList is a collection of rows
type RowList struct {
	Rows       []Row `json:"rows"`
	TotalCount int   `json:"total_count"`
}
