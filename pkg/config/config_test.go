package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RESTOOPS_AIRTABLE_API_KEY", "patTest123")
	t.Setenv("RESTOOPS_AIRTABLE_BASE_ID", "appTest456")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.App.Port)
	require.True(t, cfg.App.IsDev())
	require.Equal(t, "https://api.airtable.com/v0", cfg.Airtable.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Airtable.Timeout)
	require.Equal(t, ScopeWindowed, cfg.KPI.ReservationsScope)
	require.Equal(t, ScopeWindowed, cfg.KPI.OrdersScope)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	require.NotNil(t, loc)
}

func TestLoadRequiresCredentials(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent, not empty,
	// for envconfig's required check to trip.
	for _, key := range []string{"RESTOOPS_AIRTABLE_API_KEY", "RESTOOPS_AIRTABLE_BASE_ID"} {
		t.Setenv(key, "placeholder")
		os.Unsetenv(key)
	}

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsUnknownScopes(t *testing.T) {
	t.Setenv("RESTOOPS_AIRTABLE_API_KEY", "patTest123")
	t.Setenv("RESTOOPS_AIRTABLE_BASE_ID", "appTest456")
	t.Setenv("RESTOOPS_KPI_ORDERS_SCOPE", "quarterly")

	_, err := Load()
	require.Error(t, err)
}

func TestKPIScopeNormalization(t *testing.T) {
	t.Setenv("RESTOOPS_AIRTABLE_API_KEY", "patTest123")
	t.Setenv("RESTOOPS_AIRTABLE_BASE_ID", "appTest456")
	t.Setenv("RESTOOPS_KPI_RESERVATIONS_SCOPE", " ALL ")
	t.Setenv("RESTOOPS_KPI_ORDERS_SCOPE", "Month")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ScopeAll, cfg.KPI.ReservationsScope)
	require.Equal(t, ScopeMonth, cfg.KPI.OrdersScope)
}
