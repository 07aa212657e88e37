package roundtype

import "github.com/mcoot/arenarounds/internal/model"

// Preset names a built-in round type
type Preset string

const (
	PresetRifle        Preset = "Rifle"
	PresetSniper       Preset = "Sniper"
	PresetShotgun      Preset = "Shotgun"
	PresetPistol       Preset = "Pistol"
	PresetScout        Preset = "Scout"
	PresetAWP          Preset = "AWP"
	PresetDeagle       Preset = "Deagle"
	PresetSMG          Preset = "SMG"
	PresetLMG          Preset = "LMG"
	PresetKnife        Preset = "Knife"
	PresetTwoVSTwo     Preset = "TwoVSTwo"
	PresetThreeVSThree Preset = "ThreeVSThree"
)

// preset is a built-in round type without its ID
type preset struct {
	name Preset
	rt   model.RoundType
}

// presets in canonical order. ResetToDefaults assigns IDs by position.
var presets = []preset{
	{PresetRifle, preferred("rounds.rifle", 1, model.CategoryRifle)},
	{PresetSniper, preferred("rounds.sniper", 1, model.CategorySniper)},
	{PresetShotgun, preferred("rounds.shotgun", 1, model.CategoryShotgun)},
	{PresetPistol, model.RoundType{
		NameKey:          "rounds.pistol",
		TeamSize:         1,
		EnabledByDefault: true,
	}},
	{PresetScout, model.RoundType{
		NameKey:               "rounds.scout",
		TeamSize:              1,
		PrimaryWeapon:         model.WeaponScout,
		UsePreferredSecondary: true,
		Armor:                 true,
		Helmet:                true,
		EnabledByDefault:      true,
	}},
	{PresetAWP, model.RoundType{
		NameKey:               "rounds.awp",
		TeamSize:              1,
		PrimaryWeapon:         model.WeaponAWP,
		UsePreferredSecondary: true,
		Armor:                 true,
		Helmet:                true,
		EnabledByDefault:      true,
	}},
	{PresetDeagle, model.RoundType{
		NameKey:          "rounds.deagle",
		TeamSize:         1,
		SecondaryWeapon:  model.WeaponDeagle,
		Armor:            true,
		Helmet:           true,
		EnabledByDefault: true,
	}},
	{PresetSMG, preferred("rounds.smg", 1, model.CategorySMG)},
	{PresetLMG, preferred("rounds.lmg", 1, model.CategoryLMG)},
	{PresetKnife, model.RoundType{
		NameKey:  "rounds.knife",
		TeamSize: 1,
	}},
	{PresetTwoVSTwo, preferred("rounds.2vs2", 2, model.CategoryUnknown)},
	{PresetThreeVSThree, preferred("rounds.3vs3", 3, model.CategoryUnknown)},
}

// preferred builds a round type where both slots come from player preferences
func preferred(nameKey string, teamSize int, category model.WeaponCategory) model.RoundType {
	return model.RoundType{
		NameKey:               nameKey,
		TeamSize:              teamSize,
		UsePreferredPrimary:   true,
		PrimaryPreference:     category,
		UsePreferredSecondary: true,
		Armor:                 true,
		Helmet:                true,
		EnabledByDefault:      true,
	}
}

// Presets returns the built-in preset names in canonical order
func Presets() []Preset {
	names := make([]Preset, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}
