package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/arenarounds/internal/api/request"
	"github.com/mcoot/arenarounds/internal/api/response"
	"github.com/mcoot/arenarounds/internal/model"
	"github.com/mcoot/arenarounds/internal/services/definitions"
	"github.com/mcoot/arenarounds/internal/services/roundtype"
	"github.com/mcoot/arenarounds/internal/weapons"
)

// RoundTypeHandler handles round type catalog endpoints
type RoundTypeHandler struct {
	registry    *roundtype.Registry
	definitions *definitions.Service
	catalog     *weapons.Catalog
	logger      *slog.Logger
}

// NewRoundTypeHandler creates a new round type handler
func NewRoundTypeHandler(registry *roundtype.Registry, defs *definitions.Service, catalog *weapons.Catalog, logger *slog.Logger) *RoundTypeHandler {
	return &RoundTypeHandler{
		registry:    registry,
		definitions: defs,
		catalog:     catalog,
		logger:      logger,
	}
}

// List handles GET /api/v1/round-types
func (h *RoundTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.RoundTypeListFromModel(h.registry.List(), h.catalog))
}

// Get handles GET /api/v1/round-types/{id}
func (h *RoundTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := roundTypeID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	rt, err := h.registry.Get(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoundTypeFromModel(rt, h.catalog))
}

// Add handles POST /api/v1/round-types
func (h *RoundTypeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddRoundTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, model.ErrInvalidDefinition) {
			WriteError(w, err)
		} else {
			WriteError(w, NewInvalidRequestError("invalid request body"))
		}
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if req.TeamSize != nil && *req.TeamSize < 1 {
		WriteError(w, NewInvalidRequestError("team_size must be at least 1"))
		return
	}

	rt, err := h.definitions.Add(r.Context(), req.Definition())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.RoundTypeFromModel(rt, h.catalog))
}

// Remove handles DELETE /api/v1/round-types/{id}
func (h *RoundTypeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := roundTypeID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.registry.RemoveSpecial(id)
	response.NoContent(w)
}

// Reset handles POST /api/v1/round-types/reset
func (h *RoundTypeHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.registry.ResetToDefaults()
	h.List(w, r)
}

// Clear handles POST /api/v1/round-types/clear
func (h *RoundTypeHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.registry.Clear()
	response.NoContent(w)
}

// Reload handles POST /api/v1/round-types/reload
func (h *RoundTypeHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.definitions.Reload(r.Context()); err != nil {
		h.logger.Error("reload round types", slog.String("error", err.Error()))
		WriteError(w, err)
		return
	}
	h.List(w, r)
}

// Weapons handles GET /api/v1/weapons
func (h *RoundTypeHandler) Weapons(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.WeaponListFromCatalog(h.catalog))
}

func roundTypeID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, NewInvalidRequestError("round type id must be an integer")
	}
	return id, nil
}
