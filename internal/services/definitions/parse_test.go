package definitions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/arenarounds/internal/model"
)

func TestParseAppliesDefaults(t *testing.T) {
	data := []byte(`
round_types:
  - name: rounds.minimal
`)
	defs, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	assert.Equal(t, model.NewDefinition("rounds.minimal"), defs[0])
}

func TestParseAllFields(t *testing.T) {
	data := []byte(`
round_types:
  - name: rounds.ak_duel
    team_size: 2
    primary_weapon: ak47
    secondary_weapon: deagle
    use_preferred_primary: true
    primary_preference: rifle
    use_preferred_secondary: true
    armor: false
    helmet: false
    enabled_by_default: false
`)
	defs, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	def := defs[0]
	assert.Equal(t, "rounds.ak_duel", def.NameKey)
	assert.Equal(t, 2, def.TeamSize)
	assert.Equal(t, "ak47", def.PrimaryWeapon)
	assert.Equal(t, "deagle", def.SecondaryWeapon)
	assert.True(t, def.UsePreferredPrimary)
	assert.Equal(t, model.CategoryRifle, def.PrimaryPreference)
	assert.True(t, def.UsePreferredSecondary)
	assert.False(t, def.Armor)
	assert.False(t, def.Helmet)
	assert.False(t, def.EnabledByDefault)
}

func TestParseKeepsOrder(t *testing.T) {
	data := []byte(`
round_types:
  - name: b
  - name: a
  - name: c
`)
	defs, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, defs, 3)
	assert.Equal(t, "b", defs[0].NameKey)
	assert.Equal(t, "a", defs[1].NameKey)
	assert.Equal(t, "c", defs[2].NameKey)
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"round_types": [{"name": "rounds.json", "team_size": 3, "helmet": false}]}`)

	defs, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, 3, defs[0].TeamSize)
	assert.False(t, defs[0].Helmet)
	assert.True(t, defs[0].Armor)
}

func TestParseKeepsUnknownWeaponTags(t *testing.T) {
	data := []byte(`
round_types:
  - name: rounds.odd
    primary_weapon: railgun
`)
	defs, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "railgun", defs[0].PrimaryWeapon)
}

func TestParseRejectsUnknownCategory(t *testing.T) {
	data := []byte(`
round_types:
  - name: rounds.bad
    primary_preference: laser
`)
	_, err := Parse(data)
	assert.ErrorIs(t, err, model.ErrInvalidDefinition)
}

func TestParseRejectsMissingName(t *testing.T) {
	data := []byte(`
round_types:
  - team_size: 2
`)
	_, err := Parse(data)
	assert.ErrorIs(t, err, model.ErrInvalidDefinition)
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	_, err := Parse([]byte("round_types: [unclosed"))
	assert.ErrorIs(t, err, model.ErrInvalidDefinition)
}

func TestParseEmptyDocument(t *testing.T) {
	defs, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, defs)
}
