package factory

import (
	"github.com/mcoot/arenarounds/internal/services/auth"
	"github.com/mcoot/arenarounds/internal/storage/memory"
	"github.com/mcoot/arenarounds/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Memory is the concrete storage for direct inspection in tests
	Memory *memory.Storage
}

// NewTestApp creates an App on in-memory storage with the presets loaded
func NewTestApp(authCfg auth.Config) *TestApp {
	store := memory.New()
	app := newWithDependencies(store, authCfg, testutil.NopLogger())
	app.Registry.ResetToDefaults()

	return &TestApp{
		App:    app,
		Memory: store,
	}
}
