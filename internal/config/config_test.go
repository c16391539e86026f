package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 8080, c.Server.Port)
	require.Equal(t, "/admin", c.Auth.AdminPrefix)
	require.Equal(t, "/auth/login", c.Auth.LoginPath)
	require.Equal(t, "local", c.Auth.Provider)
	require.True(t, c.Email.UseSSL, "port 465 implies SSL")
	require.Equal(t, 12*time.Hour, c.Auth.Local.TTL)
	require.Equal(t, ":8080", c.Addr())
}

func TestLoad_FileAndPlainEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cattery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
auth:
  admin_prefix: "backoffice/"
email:
  port: 587
  user: ops@example.com
`), 0o600))

	t.Setenv("DB_DSN", "postgres://u:p@localhost/cattery")
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("CATTERY_SERVER_PORT", "7070")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7070, c.Server.Port)
	require.Equal(t, "postgres://u:p@localhost/cattery", c.Database.DSN)
	require.Equal(t, "supabase", c.Auth.Provider)
	require.Equal(t, "/backoffice", c.Auth.AdminPrefix)
	require.False(t, c.Email.UseSSL)
	require.Equal(t, "ops@example.com", c.Email.From)
	require.Equal(t, "ops@example.com", c.Email.AdminEmail)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
