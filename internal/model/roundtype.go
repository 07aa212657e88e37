package model

// Player is a participant handed to round hooks. The engine-side controller
// type lives outside this module.
type Player interface {
	PlayerID() string
}

// Roster is one team's players for a round. It may be nil.
type Roster []Player

// HookFunc is called by the round orchestrator with both teams' rosters
type HookFunc func(teamA, teamB Roster)

// Hooks holds the start/end behavior of a special round type
type Hooks struct {
	OnRoundStart HookFunc
	OnRoundEnd   HookFunc
}

// RoundType is a named equipment and team-size configuration selectable for an arena round
type RoundType struct {
	ID      int
	NameKey string

	PrimaryWeapon   Weapon
	SecondaryWeapon Weapon

	UsePreferredPrimary   bool
	UsePreferredSecondary bool
	// PrimaryPreference constrains the preferred primary to a category
	PrimaryPreference WeaponCategory

	Armor  bool
	Helmet bool

	TeamSize         int
	EnabledByDefault bool

	// hooks is only set on special round types
	hooks *Hooks
}

// NewSpecialRoundType builds a round type that carries start/end hooks.
// Special rounds never grant weapons, armor or preferences.
func NewSpecialRoundType(id int, nameKey string, teamSize int, enabledByDefault bool, hooks Hooks) RoundType {
	return RoundType{
		ID:               id,
		NameKey:          nameKey,
		TeamSize:         teamSize,
		EnabledByDefault: enabledByDefault,
		hooks:            &hooks,
	}
}

// IsSpecial reports whether the round type was injected with hooks
func (r RoundType) IsSpecial() bool {
	return r.hooks != nil
}

// Hooks returns the round's start/end hooks, if it is a special round
func (r RoundType) Hooks() (Hooks, bool) {
	if r.hooks == nil {
		return Hooks{}, false
	}
	return *r.hooks, true
}
