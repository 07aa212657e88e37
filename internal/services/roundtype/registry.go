package roundtype

import (
	"io"
	"log/slog"
	"sync"

	"github.com/mcoot/arenarounds/internal/model"
	"github.com/mcoot/arenarounds/internal/weapons"
)

// Registry is the catalog of round types available for selection.
// Entries keep registration order. All methods are safe for concurrent use.
type Registry struct {
	resolver weapons.Resolver
	logger   *slog.Logger

	mu      sync.RWMutex
	ids     idAllocator
	catalog []model.RoundType
}

// New creates an empty registry. Call ResetToDefaults to load the presets.
func New(resolver weapons.Resolver, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if resolver == nil {
		resolver = weapons.New()
	}
	return &Registry{
		resolver: resolver,
		logger:   logger,
	}
}

// AddFromDefinition registers an externally defined round type.
// Weapon tags that do not resolve leave that slot empty.
func (r *Registry) AddFromDefinition(def model.Definition) model.RoundType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addDefinitionLocked(def)
}

// Replace rebuilds the catalog as the presets followed by defs, in order.
// Readers never observe a partial rebuild.
func (r *Registry) Replace(defs []model.Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetLocked()
	for _, def := range defs {
		r.addDefinitionLocked(def)
	}
	r.logger.Info("round types replaced",
		slog.Int("definitions", len(defs)),
		slog.Int("total", len(r.catalog)),
	)
}

func (r *Registry) addDefinitionLocked(def model.Definition) model.RoundType {
	primary := r.resolve(def.NameKey, "primary", def.PrimaryWeapon)
	secondary := r.resolve(def.NameKey, "secondary", def.SecondaryWeapon)

	if def.TeamSize < 1 {
		r.logger.Warn("round type definition has non-positive team size",
			slog.String("name", def.NameKey),
			slog.Int("team_size", def.TeamSize),
		)
	}

	rt := model.RoundType{
		ID:                    r.ids.allocate(),
		NameKey:               def.NameKey,
		PrimaryWeapon:         primary,
		SecondaryWeapon:       secondary,
		UsePreferredPrimary:   def.UsePreferredPrimary,
		UsePreferredSecondary: def.UsePreferredSecondary,
		PrimaryPreference:     def.PrimaryPreference,
		Armor:                 def.Armor,
		Helmet:                def.Helmet,
		TeamSize:              def.TeamSize,
		EnabledByDefault:      def.EnabledByDefault,
	}
	r.catalog = append(r.catalog, rt)

	r.logger.Debug("round type added", slog.Int("id", rt.ID), slog.String("name", rt.NameKey))
	return rt
}

// AddSpecial registers a round type with start/end hooks and returns its ID
// so the caller can remove it later
func (r *Registry) AddSpecial(nameKey string, teamSize int, enabledByDefault bool, onStart, onEnd model.HookFunc) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	rt := model.NewSpecialRoundType(r.ids.allocate(), nameKey, teamSize, enabledByDefault, model.Hooks{
		OnRoundStart: onStart,
		OnRoundEnd:   onEnd,
	})
	r.catalog = append(r.catalog, rt)

	r.logger.Info("special round type added", slog.Int("id", rt.ID), slog.String("name", nameKey))
	return rt.ID
}

// RemoveSpecial removes every entry with the given ID. Unknown IDs are ignored.
func (r *Registry) RemoveSpecial(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.catalog[:0]
	for _, rt := range r.catalog {
		if rt.ID != id {
			kept = append(kept, rt)
		}
	}
	removed := len(r.catalog) - len(kept)
	// Drop references to hooks held in the truncated tail
	clear(r.catalog[len(kept):])
	r.catalog = kept

	if removed > 0 {
		r.logger.Info("round type removed", slog.Int("id", id))
	}
}

// Clear empties the catalog and restarts IDs from zero
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearLocked()
	r.logger.Info("round types cleared")
}

// ResetToDefaults replaces the catalog with the built-in presets, which
// receive IDs 0..N-1 in canonical order
func (r *Registry) ResetToDefaults() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetLocked()
	r.logger.Info("round types reset to defaults", slog.Int("count", len(r.catalog)))
}

func (r *Registry) resetLocked() {
	r.clearLocked()
	for _, p := range presets {
		rt := p.rt
		rt.ID = r.ids.allocate()
		r.catalog = append(r.catalog, rt)
	}
}

func (r *Registry) clearLocked() {
	r.catalog = nil
	r.ids.reset()
}

// List returns a copy of the catalog in registration order
func (r *Registry) List() []model.RoundType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.RoundType, len(r.catalog))
	copy(out, r.catalog)
	return out
}

// Get returns the round type with the given ID
func (r *Registry) Get(id int) (model.RoundType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rt := range r.catalog {
		if rt.ID == id {
			return rt, nil
		}
	}
	return model.RoundType{}, model.ErrRoundTypeNotFound
}

// Len returns the number of entries in the catalog
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.catalog)
}

func (r *Registry) resolve(nameKey, slot, tag string) model.Weapon {
	if tag == "" {
		return model.WeaponNone
	}
	w, ok := r.resolver.Resolve(tag)
	if !ok {
		r.logger.Warn("unknown weapon in round type definition",
			slog.String("name", nameKey),
			slog.String("slot", slot),
			slog.String("weapon", tag),
		)
		return model.WeaponNone
	}
	return w
}
