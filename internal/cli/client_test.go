package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDecodesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"ROUND_TYPE_NOT_FOUND","message":"Round type not found"}}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").Get(context.Background(), "/api/v1/round-types/9", nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "ROUND_TYPE_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Round type not found (ROUND_TYPE_NOT_FOUND)", err.Error())
}

func TestClientNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").Get(context.Background(), "/", nil)
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: bad gateway", err.Error())
}

func TestClientSendsTokenAndLogs(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var logs bytes.Buffer
	c := NewClient(srv.URL+"/", "adm_secret")
	c.SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	require.NoError(t, c.Post(context.Background(), "/api/v1/round-types/clear", nil, nil))
	assert.Equal(t, "Bearer adm_secret", gotAuth)
	assert.Contains(t, logs.String(), "status=204")
}

func TestOutputText(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print(RoundType{
		ID:                  0,
		Name:                "rounds.rifle",
		TeamSize:            1,
		UsePreferredPrimary: true,
		PrimaryPreference:   "rifle",
		Armor:               true,
		Helmet:              true,
		EnabledByDefault:    true,
	})

	text := buf.String()
	assert.Contains(t, text, "Round Type: rounds.rifle (0)")
	assert.Contains(t, text, "Primary: preferred rifle")
	assert.Contains(t, text, "Secondary: -")
	assert.NotContains(t, text, "Special")
}

func TestOutputEmptyList(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("text", &buf).Print(RoundTypeList{})
	assert.Equal(t, "No round types registered\n", buf.String())
}

func TestOutputJSONMessage(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("json", &buf).PrintMessage("Cleared round types")
	assert.JSONEq(t, `{"message":"Cleared round types"}`, buf.String())
}

func TestSlotText(t *testing.T) {
	assert.Equal(t, "awp", slotText("awp", true, "sniper"))
	assert.Equal(t, "preferred sniper", slotText("", true, "sniper"))
	assert.Equal(t, "preferred", slotText("", true, ""))
	assert.Equal(t, "-", slotText("", false, "rifle"))
}
