package models

// FurnitureCategory enumerates the catalog sections.
type FurnitureCategory string

const (
	CategoryTable  FurnitureCategory = "table"
	CategoryChair  FurnitureCategory = "chair"
	CategoryBed    FurnitureCategory = "bed"
	CategoryCloset FurnitureCategory = "closet"
	CategoryDrawer FurnitureCategory = "drawer"
)

// Valid reports whether the category is one of the known sections.
func (c FurnitureCategory) Valid() bool {
	switch c {
	case CategoryTable, CategoryChair, CategoryBed, CategoryCloset, CategoryDrawer:
		return true
	}
	return false
}

// FurnitureMaterial enumerates construction materials.
type FurnitureMaterial string

const (
	MaterialWood    FurnitureMaterial = "wood"
	MaterialMetal   FurnitureMaterial = "metal"
	MaterialPlastic FurnitureMaterial = "plastic"
)

func (m FurnitureMaterial) Valid() bool {
	switch m {
	case MaterialWood, MaterialMetal, MaterialPlastic:
		return true
	}
	return false
}

// ManufacturerCountry enumerates countries of origin.
type ManufacturerCountry string

const (
	CountryAzerbaijan    ManufacturerCountry = "azerbaijan"
	CountryUnitedStates  ManufacturerCountry = "united_states"
	CountryRussia        ManufacturerCountry = "russian_federation"
	CountryUkraine       ManufacturerCountry = "ukraine"
	CountryUnitedKingdom ManufacturerCountry = "united_kingdom"
	CountryBelarus       ManufacturerCountry = "belarus"
	CountryItaly         ManufacturerCountry = "italy"
	CountryGermany       ManufacturerCountry = "germany"
	CountryIreland       ManufacturerCountry = "ireland"
)

func (m ManufacturerCountry) Valid() bool {
	switch m {
	case CountryAzerbaijan, CountryUnitedStates, CountryRussia, CountryUkraine,
		CountryUnitedKingdom, CountryBelarus, CountryItaly, CountryGermany, CountryIreland:
		return true
	}
	return false
}

// Furniture is a single catalog item.
type Furniture struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	FullName     string              `gorm:"uniqueIndex" json:"fullname"`
	Description  string              `json:"description"`
	Price        float64             `json:"price"`
	Category     FurnitureCategory   `gorm:"index" json:"category"`
	Material     FurnitureMaterial   `json:"material"`
	Manufacturer ManufacturerCountry `json:"manufacturer"`
	ImageURL     string              `json:"image_url"`
}

func (Furniture) TableName() string {
	return "furniture"
}
