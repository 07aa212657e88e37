package weapons

import (
	"sort"
	"strings"

	"github.com/mcoot/arenarounds/internal/model"
)

// Resolver turns a weapon tag from a definition into a weapon identifier
type Resolver interface {
	Resolve(tag string) (model.Weapon, bool)
}

// Entry describes a single weapon in the catalog
type Entry struct {
	Weapon   model.Weapon
	Tag      string
	Category model.WeaponCategory
}

var entries = []Entry{
	{model.WeaponDeagle, "deagle", model.CategoryPistol},
	{model.WeaponGlock, "glock", model.CategoryPistol},
	{model.WeaponUSPS, "usp_silencer", model.CategoryPistol},
	{model.WeaponP2000, "hkp2000", model.CategoryPistol},
	{model.WeaponP250, "p250", model.CategoryPistol},
	{model.WeaponFiveSeven, "fiveseven", model.CategoryPistol},
	{model.WeaponTec9, "tec9", model.CategoryPistol},
	{model.WeaponCZ75, "cz75a", model.CategoryPistol},
	{model.WeaponDualBerettas, "elite", model.CategoryPistol},
	{model.WeaponRevolver, "revolver", model.CategoryPistol},

	{model.WeaponAK47, "ak47", model.CategoryRifle},
	{model.WeaponM4A4, "m4a1", model.CategoryRifle},
	{model.WeaponM4A1S, "m4a1_silencer", model.CategoryRifle},
	{model.WeaponFamas, "famas", model.CategoryRifle},
	{model.WeaponGalil, "galilar", model.CategoryRifle},
	{model.WeaponAUG, "aug", model.CategoryRifle},
	{model.WeaponSG553, "sg556", model.CategoryRifle},

	{model.WeaponAWP, "awp", model.CategorySniper},
	{model.WeaponScout, "ssg08", model.CategorySniper},
	{model.WeaponG3SG1, "g3sg1", model.CategorySniper},
	{model.WeaponSCAR20, "scar20", model.CategorySniper},

	{model.WeaponMP9, "mp9", model.CategorySMG},
	{model.WeaponMAC10, "mac10", model.CategorySMG},
	{model.WeaponMP7, "mp7", model.CategorySMG},
	{model.WeaponMP5SD, "mp5sd", model.CategorySMG},
	{model.WeaponUMP45, "ump45", model.CategorySMG},
	{model.WeaponP90, "p90", model.CategorySMG},
	{model.WeaponBizon, "bizon", model.CategorySMG},

	{model.WeaponNova, "nova", model.CategoryShotgun},
	{model.WeaponXM1014, "xm1014", model.CategoryShotgun},
	{model.WeaponMAG7, "mag7", model.CategoryShotgun},
	{model.WeaponSawedOff, "sawedoff", model.CategoryShotgun},

	{model.WeaponM249, "m249", model.CategoryLMG},
	{model.WeaponNegev, "negev", model.CategoryLMG},

	{model.WeaponKnife, "knife", model.CategoryKnife},
}

// Catalog is a static lookup table between weapon tags and identifiers.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	byTag    map[string]Entry
	byWeapon map[model.Weapon]Entry
}

// New builds the catalog of known weapons
func New() *Catalog {
	c := &Catalog{
		byTag:    make(map[string]Entry, len(entries)),
		byWeapon: make(map[model.Weapon]Entry, len(entries)),
	}
	for _, e := range entries {
		c.byTag[e.Tag] = e
		c.byWeapon[e.Weapon] = e
	}
	return c
}

// Ensure Catalog implements Resolver
var _ Resolver = (*Catalog)(nil)

// Resolve looks up a weapon by tag. The "weapon_" prefix used by the game
// engine is accepted, and matching ignores case.
func (c *Catalog) Resolve(tag string) (model.Weapon, bool) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(tag)), "weapon_")
	e, ok := c.byTag[key]
	if !ok {
		return model.WeaponNone, false
	}
	return e.Weapon, true
}

// Tag returns the tag for a weapon, or "" for WeaponNone and unknown weapons
func (c *Catalog) Tag(w model.Weapon) string {
	return c.byWeapon[w].Tag
}

// Category returns the category a weapon belongs to
func (c *Catalog) Category(w model.Weapon) model.WeaponCategory {
	return c.byWeapon[w].Category
}

// Entries returns all catalog entries ordered by tag
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.byTag))
	for _, e := range c.byTag {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}
