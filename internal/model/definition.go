package model

// Definition is an externally authored round type, as read from a
// definitions file or submitted through the admin API. Weapon fields hold
// weapon tags (e.g. "ak47") that are resolved when the definition is registered.
type Definition struct {
	NameKey               string         `json:"name"`
	TeamSize              int            `json:"team_size"`
	PrimaryWeapon         string         `json:"primary_weapon,omitempty"`
	SecondaryWeapon       string         `json:"secondary_weapon,omitempty"`
	UsePreferredPrimary   bool           `json:"use_preferred_primary"`
	PrimaryPreference     WeaponCategory `json:"primary_preference,omitempty"`
	UsePreferredSecondary bool           `json:"use_preferred_secondary"`
	Armor                 bool           `json:"armor"`
	Helmet                bool           `json:"helmet"`
	EnabledByDefault      bool           `json:"enabled_by_default"`
}

// NewDefinition returns a definition with the defaults applied to fields a
// definition author may leave out
func NewDefinition(nameKey string) Definition {
	return Definition{
		NameKey:          nameKey,
		TeamSize:         1,
		Armor:            true,
		Helmet:           true,
		EnabledByDefault: true,
	}
}
