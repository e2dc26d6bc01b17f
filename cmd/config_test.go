package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"profast/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_PostgresDSN(t *testing.T) {
	t.Run("defaults sslmode", func(t *testing.T) {
		c := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "secret", DBName: "profast"}

		assert.Equal(t, "host=db port=5432 user=app password=secret dbname=profast sslmode=disable", c.PostgresDSN())
	})

	t.Run("quotes passwords with spaces", func(t *testing.T) {
		c := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "it's a pass", DBName: "p", DBSslMode: "require"}

		assert.Equal(t, `host=db port=5432 user=app password='it\'s a pass' dbname=p sslmode=require`, c.PostgresDSN())
	})
}

func TestConfig_PostgresURL(t *testing.T) {
	c := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "p@ss", DBName: "profast"}

	assert.Equal(t, "postgres://app:p%40ss@db:5432/postgres?sslmode=disable", c.PostgresURL("postgres"))
}

func TestConfig_CORSOriginList(t *testing.T) {
	assert.Nil(t, cmd.Config{}.CORSOriginList())
	assert.Equal(t,
		[]string{"http://localhost:5173", "https://profast.app"},
		cmd.Config{CORSOrigins: " http://localhost:5173, ,https://profast.app"}.CORSOriginList(),
	)
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, cmd.Config{LogLevel: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, cmd.Config{LogLevel: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, cmd.Config{LogLevel: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, cmd.Config{}.SlogLevel())
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing dotenv falls back to the environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "8080")
		t.Setenv("OPENAPI_VALIDATE", "true")

		c, err := cmd.LoadConfig(filepath.Join(t.TempDir(), ".env"))

		require.NoError(t, err)
		assert.Equal(t, "8080", c.HTTPPort)
		assert.True(t, c.OpenAPIValidate)
	})

	t.Run("dotenv does not override the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("DB_NAME=fromfile\nJWT_ISSUER=profast\n"), 0o600))
		t.Setenv("DB_NAME", "fromenv")
		t.Setenv("JWT_ISSUER", "")
		require.NoError(t, os.Unsetenv("JWT_ISSUER"))

		c, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "fromenv", c.DBName)
		assert.Equal(t, "profast", c.JWTIssuer)
	})
}
