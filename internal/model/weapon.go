package model

import (
	"fmt"
	"strings"
)

// Weapon identifies an equippable weapon. The zero value means no weapon.
type Weapon int

const (
	WeaponNone Weapon = iota

	// Pistols
	WeaponDeagle
	WeaponGlock
	WeaponUSPS
	WeaponP2000
	WeaponP250
	WeaponFiveSeven
	WeaponTec9
	WeaponCZ75
	WeaponDualBerettas
	WeaponRevolver

	// Rifles
	WeaponAK47
	WeaponM4A4
	WeaponM4A1S
	WeaponFamas
	WeaponGalil
	WeaponAUG
	WeaponSG553

	// Snipers
	WeaponAWP
	WeaponScout
	WeaponG3SG1
	WeaponSCAR20

	// SMGs
	WeaponMP9
	WeaponMAC10
	WeaponMP7
	WeaponMP5SD
	WeaponUMP45
	WeaponP90
	WeaponBizon

	// Shotguns
	WeaponNova
	WeaponXM1014
	WeaponMAG7
	WeaponSawedOff

	// LMGs
	WeaponM249
	WeaponNegev

	WeaponKnife
)

// WeaponCategory groups weapons for preference-driven slots.
// The empty string means no category constraint.
type WeaponCategory string

const (
	CategoryNone    WeaponCategory = ""
	CategoryPistol  WeaponCategory = "pistol"
	CategoryRifle   WeaponCategory = "rifle"
	CategorySniper  WeaponCategory = "sniper"
	CategorySMG     WeaponCategory = "smg"
	CategoryShotgun WeaponCategory = "shotgun"
	CategoryLMG     WeaponCategory = "lmg"
	CategoryKnife   WeaponCategory = "knife"
	// CategoryUnknown lets a player pick from any category.
	CategoryUnknown WeaponCategory = "unknown"
)

// ParseWeaponCategory parses a category name, ignoring case
func ParseWeaponCategory(s string) (WeaponCategory, error) {
	switch c := WeaponCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryNone, CategoryPistol, CategoryRifle, CategorySniper, CategorySMG,
		CategoryShotgun, CategoryLMG, CategoryKnife, CategoryUnknown:
		return c, nil
	default:
		return CategoryNone, fmt.Errorf("%w: unknown weapon category %q", ErrInvalidDefinition, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *WeaponCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseWeaponCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
