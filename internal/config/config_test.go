package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DB_DRIVER", "DB_PATH", "CATALOG_PATH", "GEMINI_API_KEY", "MAX_FILE_SIZE", "PDF_EXTRACT_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "resume_analysis.db", cfg.GetDatabaseDSN())
	assert.Empty(t, cfg.Catalog.Path)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 20*time.Second, cfg.Storage.ExtractTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "resumes")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("CATALOG_PATH", "/etc/catalog.yaml")
	t.Setenv("PDF_EXTRACT_TIMEOUT_SECONDS", "5")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.Storage.ExtractTimeout)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.Equal(t, "/etc/catalog.yaml", cfg.Catalog.Path)
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db.internal")
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=resumes")
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "ten megabytes")

	assert.Equal(t, int64(10485760), Load().Storage.MaxFileSize)
}

func TestInitDatabaseSQLite(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Env: "test"},
		Database: DatabaseConfig{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "history.db")},
	}

	db, err := InitDatabase(cfg)
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable("resume_results"))
}

func TestInitDatabaseUnknownDriver(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "oracle"}}

	_, err := InitDatabase(cfg)
	assert.Error(t, err)
}
