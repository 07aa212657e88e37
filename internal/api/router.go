package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/arenarounds/internal/api/handler"
	"github.com/mcoot/arenarounds/internal/api/middleware"
	"github.com/mcoot/arenarounds/internal/services/auth"
	"github.com/mcoot/arenarounds/internal/services/definitions"
	"github.com/mcoot/arenarounds/internal/services/roundtype"
	"github.com/mcoot/arenarounds/internal/weapons"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	Registry           *roundtype.Registry
	DefinitionsService *definitions.Service
	WeaponCatalog      *weapons.Catalog
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	roundTypeHandler := handler.NewRoundTypeHandler(cfg.Registry, cfg.DefinitionsService, cfg.WeaponCatalog, cfg.Logger)

	// Create middleware
	adminMiddleware := middleware.AdminAuth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Read-only catalog routes
	api.HandleFunc("/round-types", roundTypeHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/round-types/{id:[0-9]+}", roundTypeHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/weapons", roundTypeHandler.Weapons).Methods(http.MethodGet)

	// Catalog mutations require the admin token
	admin := api.PathPrefix("/round-types").Subrouter()
	admin.Use(adminMiddleware)
	admin.HandleFunc("", roundTypeHandler.Add).Methods(http.MethodPost)
	admin.HandleFunc("/reset", roundTypeHandler.Reset).Methods(http.MethodPost)
	admin.HandleFunc("/clear", roundTypeHandler.Clear).Methods(http.MethodPost)
	admin.HandleFunc("/reload", roundTypeHandler.Reload).Methods(http.MethodPost)
	admin.HandleFunc("/{id:[0-9]+}", roundTypeHandler.Remove).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
