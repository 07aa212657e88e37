package weapons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/arenarounds/internal/model"
)

func TestResolveKnownTags(t *testing.T) {
	c := New()

	cases := map[string]model.Weapon{
		"ak47":          model.WeaponAK47,
		"awp":           model.WeaponAWP,
		"ssg08":         model.WeaponScout,
		"deagle":        model.WeaponDeagle,
		"WEAPON_AK47":   model.WeaponAK47,
		" usp_silencer": model.WeaponUSPS,
	}
	for tag, want := range cases {
		got, ok := c.Resolve(tag)
		assert.True(t, ok, tag)
		assert.Equal(t, want, got, tag)
	}
}

func TestResolveUnknownTag(t *testing.T) {
	c := New()

	w, ok := c.Resolve("railgun")
	assert.False(t, ok)
	assert.Equal(t, model.WeaponNone, w)

	w, ok = c.Resolve("")
	assert.False(t, ok)
	assert.Equal(t, model.WeaponNone, w)
}

func TestTagAndCategory(t *testing.T) {
	c := New()

	assert.Equal(t, "ssg08", c.Tag(model.WeaponScout))
	assert.Equal(t, model.CategorySniper, c.Category(model.WeaponScout))
	assert.Equal(t, "", c.Tag(model.WeaponNone))
	assert.Equal(t, model.CategoryNone, c.Category(model.WeaponNone))
}

func TestEntriesAreUniqueAndSorted(t *testing.T) {
	c := New()
	all := c.Entries()
	require.Len(t, all, len(entries))

	seen := make(map[model.Weapon]bool)
	for i, e := range all {
		assert.False(t, seen[e.Weapon], "duplicate weapon %s", e.Tag)
		seen[e.Weapon] = true
		assert.NotEqual(t, model.WeaponNone, e.Weapon)
		if i > 0 {
			assert.Less(t, all[i-1].Tag, e.Tag)
		}
	}
}
