package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "matricula", cfg.Database.Name)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 0, cfg.Reports.AcademicYear)
	assert.Equal(t, "./images", cfg.Reports.AssetsDir)
	assert.Equal(t, 200, cfg.Reports.MaxBatch)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DB_HOST", "db.internal")
	v.Set("DB_PORT", 6543)
	v.Set("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	v.Set("ACADEMIC_YEAR", 2024)
	v.Set("REPORT_MAX_BATCH", -1)
	v.Set("DB_CONNECT_TIMEOUT", "not-a-duration")

	cfg := fromViper(v)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2024, cfg.Reports.AcademicYear)
	assert.Equal(t, 200, cfg.Reports.MaxBatch)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
}
