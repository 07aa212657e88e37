package response

import (
	"github.com/mcoot/arenarounds/internal/model"
	"github.com/mcoot/arenarounds/internal/weapons"
)

// RoundType represents a round type in API responses
type RoundType struct {
	ID                    int    `json:"id"`
	Name                  string `json:"name"`
	TeamSize              int    `json:"team_size"`
	PrimaryWeapon         string `json:"primary_weapon,omitempty"`
	SecondaryWeapon       string `json:"secondary_weapon,omitempty"`
	UsePreferredPrimary   bool   `json:"use_preferred_primary"`
	PrimaryPreference     string `json:"primary_preference,omitempty"`
	UsePreferredSecondary bool   `json:"use_preferred_secondary"`
	Armor                 bool   `json:"armor"`
	Helmet                bool   `json:"helmet"`
	EnabledByDefault      bool   `json:"enabled_by_default"`
	Special               bool   `json:"special"`
}

// RoundTypeFromModel converts a model.RoundType, naming weapons by their tags
func RoundTypeFromModel(rt model.RoundType, catalog *weapons.Catalog) RoundType {
	return RoundType{
		ID:                    rt.ID,
		Name:                  rt.NameKey,
		TeamSize:              rt.TeamSize,
		PrimaryWeapon:         catalog.Tag(rt.PrimaryWeapon),
		SecondaryWeapon:       catalog.Tag(rt.SecondaryWeapon),
		UsePreferredPrimary:   rt.UsePreferredPrimary,
		PrimaryPreference:     string(rt.PrimaryPreference),
		UsePreferredSecondary: rt.UsePreferredSecondary,
		Armor:                 rt.Armor,
		Helmet:                rt.Helmet,
		EnabledByDefault:      rt.EnabledByDefault,
		Special:               rt.IsSpecial(),
	}
}

// RoundTypeList is the response for listing the catalog
type RoundTypeList struct {
	RoundTypes []RoundType `json:"round_types"`
}

// RoundTypeListFromModel converts the catalog in order
func RoundTypeListFromModel(list []model.RoundType, catalog *weapons.Catalog) RoundTypeList {
	out := RoundTypeList{RoundTypes: make([]RoundType, len(list))}
	for i, rt := range list {
		out.RoundTypes[i] = RoundTypeFromModel(rt, catalog)
	}
	return out
}

// Weapon represents a weapon catalog entry
type Weapon struct {
	Tag      string `json:"tag"`
	Category string `json:"category"`
}

// WeaponList is the response for listing known weapons
type WeaponList struct {
	Weapons []Weapon `json:"weapons"`
}

// WeaponListFromCatalog lists every weapon in the catalog
func WeaponListFromCatalog(catalog *weapons.Catalog) WeaponList {
	entries := catalog.Entries()
	out := WeaponList{Weapons: make([]Weapon, len(entries))}
	for i, e := range entries {
		out.Weapons[i] = Weapon{Tag: e.Tag, Category: string(e.Category)}
	}
	return out
}
