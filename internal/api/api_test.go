package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/arenarounds/internal/api"
	"github.com/mcoot/arenarounds/internal/api/apierr"
	"github.com/mcoot/arenarounds/internal/api/response"
	"github.com/mcoot/arenarounds/internal/factory"
	"github.com/mcoot/arenarounds/internal/model"
	"github.com/mcoot/arenarounds/internal/services/auth"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T, authCfg auth.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app := factory.NewTestApp(authCfg)

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		Registry:           app.Registry,
		DefinitionsService: app.DefinitionsService,
		WeaponCatalog:      app.WeaponCatalog,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestListRoundTypes(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	rr := ts.request(http.MethodGet, "/api/v1/round-types", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	list := decode[response.RoundTypeList](t, rr)
	require.Len(t, list.RoundTypes, 12)
	assert.Equal(t, "rounds.rifle", list.RoundTypes[0].Name)
	assert.Equal(t, "rifle", list.RoundTypes[0].PrimaryPreference)
	assert.Equal(t, "ssg08", list.RoundTypes[4].PrimaryWeapon)
	assert.Equal(t, "deagle", list.RoundTypes[6].SecondaryWeapon)
	assert.Equal(t, 3, list.RoundTypes[11].TeamSize)
}

func TestGetRoundType(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	rr := ts.request(http.MethodGet, "/api/v1/round-types/9", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	knife := decode[response.RoundType](t, rr)
	assert.Equal(t, "rounds.knife", knife.Name)
	assert.False(t, knife.Armor)
	assert.False(t, knife.EnabledByDefault)
	assert.False(t, knife.Special)
}

func TestGetRoundTypeNotFound(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	rr := ts.request(http.MethodGet, "/api/v1/round-types/42", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	errResp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeRoundTypeNotFound, errResp.Error.Code)
}

func TestAddRoundType(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	body := map[string]any{
		"name":           "rounds.nova",
		"primary_weapon": "nova",
		"helmet":         false,
	}
	rr := ts.request(http.MethodPost, "/api/v1/round-types", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rt := decode[response.RoundType](t, rr)
	assert.Equal(t, 12, rt.ID)
	assert.Equal(t, "nova", rt.PrimaryWeapon)
	assert.Equal(t, 1, rt.TeamSize)
	assert.True(t, rt.Armor)
	assert.False(t, rt.Helmet)
	assert.True(t, rt.EnabledByDefault)

	stored, err := ts.app.Memory.GetDefinitions(t.Context())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "rounds.nova", stored[0].NameKey)
}

func TestAddRoundTypeUnknownWeapon(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	body := map[string]any{"name": "rounds.laser", "primary_weapon": "laser"}
	rr := ts.request(http.MethodPost, "/api/v1/round-types", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rt := decode[response.RoundType](t, rr)
	assert.Empty(t, rt.PrimaryWeapon)
}

func TestAddRoundTypeValidation(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	cases := []struct {
		name string
		body any
		code string
	}{
		{"missing name", map[string]any{"team_size": 2}, apierr.CodeInvalidRequest},
		{"zero team size", map[string]any{"name": "x", "team_size": 0}, apierr.CodeInvalidRequest},
		{"unknown category", map[string]any{"name": "x", "primary_preference": "laser"}, apierr.CodeInvalidDefinition},
		{"malformed body", "{not json", apierr.CodeInvalidRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/round-types", tc.body, "")
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			errResp := decode[apierr.ErrorResponse](t, rr)
			assert.Equal(t, tc.code, errResp.Error.Code)
		})
	}
	assert.Equal(t, 12, ts.app.Registry.Len())
}

func TestRemoveSpecialRoundType(t *testing.T) {
	ts := newTestServer(t, auth.Config{})
	id := ts.app.Registry.AddSpecial("rounds.bonus", 2, true, func(_, _ model.Roster) {}, func(_, _ model.Roster) {})

	rr := ts.request(http.MethodGet, "/api/v1/round-types/12", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[response.RoundType](t, rr).Special)

	rr = ts.request(http.MethodDelete, "/api/v1/round-types/12", nil, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 12, id)
	assert.Equal(t, 12, ts.app.Registry.Len())

	// Removing again is a no-op
	rr = ts.request(http.MethodDelete, "/api/v1/round-types/12", nil, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 12, ts.app.Registry.Len())
}

func TestClearAndReset(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	rr := ts.request(http.MethodPost, "/api/v1/round-types/clear", nil, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 0, ts.app.Registry.Len())

	rr = ts.request(http.MethodPost, "/api/v1/round-types/reset", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[response.RoundTypeList](t, rr)
	require.Len(t, list.RoundTypes, 12)
	for i, rt := range list.RoundTypes {
		assert.Equal(t, i, rt.ID)
	}
}

func TestReloadFromStorage(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	def := model.NewDefinition("rounds.stored")
	def.PrimaryWeapon = "awp"
	require.NoError(t, ts.app.Memory.SaveDefinitions(t.Context(), []model.Definition{def}))
	ts.app.Registry.AddSpecial("rounds.bonus", 1, true, nil, nil)

	rr := ts.request(http.MethodPost, "/api/v1/round-types/reload", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	list := decode[response.RoundTypeList](t, rr)
	require.Len(t, list.RoundTypes, 13)
	assert.Equal(t, "rounds.stored", list.RoundTypes[12].Name)
	assert.Equal(t, "awp", list.RoundTypes[12].PrimaryWeapon)
}

func TestListWeapons(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	rr := ts.request(http.MethodGet, "/api/v1/weapons", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	list := decode[response.WeaponList](t, rr)
	assert.NotEmpty(t, list.Weapons)
	assert.Contains(t, list.Weapons, response.Weapon{Tag: "awp", Category: "sniper"})
}

func TestAdminTokenRequired(t *testing.T) {
	token, err := auth.GenerateToken()
	require.NoError(t, err)
	hash, err := auth.HashToken(token)
	require.NoError(t, err)
	ts := newTestServer(t, auth.Config{TokenHash: hash})

	// Reads stay open
	rr := ts.request(http.MethodGet, "/api/v1/round-types", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/round-types/clear", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeUnauthorized, decode[apierr.ErrorResponse](t, rr).Error.Code)

	rr = ts.request(http.MethodPost, "/api/v1/round-types/clear", nil, "wrong")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 12, ts.app.Registry.Len())

	rr = ts.request(http.MethodPost, "/api/v1/round-types/clear", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 0, ts.app.Registry.Len())
}

func TestInvalidIDIsNotRouted(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	rr := ts.request(http.MethodGet, "/api/v1/round-types/abc", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
