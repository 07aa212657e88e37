package definitions

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/arenarounds/internal/model"
)

// File is the root structure of a round type definitions file
type File struct {
	RoundTypes []Record `yaml:"round_types"`
}

// Record is a single round type as written in a definitions file.
// Pointer fields distinguish "absent" from an explicit zero so defaults can apply.
type Record struct {
	Name                  string               `yaml:"name"`
	TeamSize              *int                 `yaml:"team_size"`
	PrimaryWeapon         string               `yaml:"primary_weapon"`
	SecondaryWeapon       string               `yaml:"secondary_weapon"`
	UsePreferredPrimary   bool                 `yaml:"use_preferred_primary"`
	PrimaryPreference     model.WeaponCategory `yaml:"primary_preference"`
	UsePreferredSecondary bool                 `yaml:"use_preferred_secondary"`
	Armor                 *bool                `yaml:"armor"`
	Helmet                *bool                `yaml:"helmet"`
	EnabledByDefault      *bool                `yaml:"enabled_by_default"`
}

// Definition converts the record, filling in defaults for absent fields
func (r Record) Definition() model.Definition {
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

// Parse reads a definitions document. JSON documents are accepted as well,
// since they are valid YAML.
func Parse(data []byte) ([]model.Definition, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidDefinition, err)
	}

	defs := make([]model.Definition, 0, len(file.RoundTypes))
	for i, rec := range file.RoundTypes {
		if rec.Name == "" {
			return nil, fmt.Errorf("%w: round type %d has no name", model.ErrInvalidDefinition, i)
		}
		defs = append(defs, rec.Definition())
	}
	return defs, nil
}
