package storefront

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azgaming/storefront/internal/config"
	"github.com/azgaming/storefront/notify"
)

type recorder struct {
	notes []notify.Notification
}

func (r *recorder) Notify(n notify.Notification) {
	r.notes = append(r.notes, n)
}

func TestNewAppFromDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE.PATH", filepath.Join(dir, "data"))
	t.Setenv("APPLICATION.LOG_FILE", filepath.Join(dir, "storefront.log"))

	rec := &recorder{}
	app, err := NewApp(context.Background(), "application", WithNotifier(rec))
	require.NoError(t, err)

	assert.Equal(t, "file", app.Config.Storage.Driver)
	assert.Equal(t, "0.1", app.Config.Checkout.TaxRate)
	assert.Len(t, app.Catalog.Items(), 30)

	item, ok := app.Catalog.FindByID("ps5-001")
	require.True(t, ok)
	app.Cart.Add(item)
	assert.Equal(t, 1, app.Cart.Count())
	assert.FileExists(t, filepath.Join(dir, "data", "azgaming-cart.json"))

	wantTax := item.Price.Mul(decimal.RequireFromString("0.1")).Round(2)
	assert.True(t, app.Checkout.Totals().Tax.Equal(wantTax))

	require.NoError(t, app.Auth.Login("68686868", "Abcd!123456789"))
	assert.True(t, app.Auth.IsAuthenticated())

	settings, err := app.Admin.Settings()
	require.NoError(t, err)
	assert.Equal(t, "AZgaming", settings.SiteName)

	var messages []string
	for _, n := range rec.notes {
		messages = append(messages, n.Message)
	}
	assert.Contains(t, messages, "Login successful!")
}

func TestNewStorageDrivers(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		cfg     config.Storage
		wantErr bool
	}{
		{name: "file", cfg: config.Storage{Driver: "file", Path: filepath.Join(dir, "files")}},
		{name: "sqlite", cfg: config.Storage{Driver: "sqlite", Path: filepath.Join(dir, "blobs.db")}},
		{name: "memory", cfg: config.Storage{Driver: "memory"}},
		{name: "unknown", cfg: config.Storage{Driver: "bolt"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := newStorage(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, st.Set("sample-key", []byte(`{"ok":true}`)))
			raw, err := st.Get("sample-key")
			require.NoError(t, err)
			assert.JSONEq(t, `{"ok":true}`, string(raw))
		})
	}
}
