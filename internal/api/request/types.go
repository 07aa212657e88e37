package request

import "github.com/mcoot/arenarounds/internal/model"

// AddRoundTypeRequest is the request body for registering a round type.
// Omitted optional fields take the same defaults as a definitions file.
type AddRoundTypeRequest struct {
	Name                  string               `json:"name"`
	TeamSize              *int                 `json:"team_size,omitempty"`
	PrimaryWeapon         string               `json:"primary_weapon,omitempty"`
	SecondaryWeapon       string               `json:"secondary_weapon,omitempty"`
	UsePreferredPrimary   bool                 `json:"use_preferred_primary,omitempty"`
	PrimaryPreference     model.WeaponCategory `json:"primary_preference,omitempty"`
	UsePreferredSecondary bool                 `json:"use_preferred_secondary,omitempty"`
	Armor                 *bool                `json:"armor,omitempty"`
	Helmet                *bool                `json:"helmet,omitempty"`
	EnabledByDefault      *bool                `json:"enabled_by_default,omitempty"`
}

// Definition converts the request to a definition with defaults applied
func (r AddRoundTypeRequest) Definition() model.Definition {
	def := model.NewDefinition(r.Name)
	if r.TeamSize != nil {
		def.TeamSize = *r.TeamSize
	}
	def.PrimaryWeapon = r.PrimaryWeapon
	def.SecondaryWeapon = r.SecondaryWeapon
	def.UsePreferredPrimary = r.UsePreferredPrimary
	def.PrimaryPreference = r.PrimaryPreference
	def.UsePreferredSecondary = r.UsePreferredSecondary
	if r.Armor != nil {
		def.Armor = *r.Armor
	}
	if r.Helmet != nil {
		def.Helmet = *r.Helmet
	}
	if r.EnabledByDefault != nil {
		def.EnabledByDefault = *r.EnabledByDefault
	}
	return def
}
