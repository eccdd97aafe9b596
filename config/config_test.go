package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Test that LoadConfig returns a non-nil config and respects APPENV=test
func TestLoadConfigAndConnectDatabase_TestEnv(t *testing.T) {
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)
	t.Setenv("APPENV", "test")

	cfg := LoadConfig()
	if cfg == nil {
		t.Fatalf("expected non-nil config")
	}

	db, err := ConnectDatabase()
	if err != nil {
		t.Fatalf("ConnectDatabase failed in test env: %v", err)
	}
	if db == nil {
		t.Fatalf("expected non-nil DB connection")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)
	for _, k := range []string{"APPPORT", "DBDRIVER", "STORE_BACKEND", "SEED_SAMPLE_DATA", "RATE_LIMIT", "RATE_WINDOW"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, uint16(8001), cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.True(t, cfg.SeedSampleData)
	assert.Zero(t, cfg.RateLimit)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)
	t.Setenv("APPPORT", "9090")
	t.Setenv("DBDRIVER", "Postgres")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("SEED_SAMPLE_DATA", "false")
	t.Setenv("RATE_LIMIT", "7")
	t.Setenv("RATE_WINDOW", "2m")

	cfg := LoadConfig()
	assert.Equal(t, uint16(9090), cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, StoreRedis, cfg.StoreBackend)
	assert.False(t, cfg.SeedSampleData)
	assert.Equal(t, 7, cfg.RateLimit)
	assert.Equal(t, 2*time.Minute, cfg.RateWindow)
}

func TestConfigDSN(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantErr bool
	}{
		{
			name: "mysql",
			cfg:  Config{DBDriver: "mysql", DBUSER: "root", DBPass: "pw", DBHost: "db", DBPort: 3306, DBName: "referral"},
			want: "root:pw@tcp(db:3306)/referral?parseTime=true",
		},
		{
			name: "postgres",
			cfg:  Config{DBDriver: "postgres", DBUSER: "u", DBPass: "p", DBHost: "pg", DBPort: 5432, DBName: "referral"},
			want: "host=pg port=5432 user=u password=p dbname=referral sslmode=disable",
		},
		{
			name: "sqlite",
			cfg:  Config{DBDriver: "sqlite", DBName: "referral.db"},
			want: "referral.db",
		},
		{
			name:    "unknown driver",
			cfg:     Config{DBDriver: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.DSN()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfig_SeedSampleData(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "", want: true},
		{value: "true", want: true},
		{value: "TRUE", want: true},
		{value: "1", want: true},
		{value: "false", want: false},
		{value: "0", want: false},
		{value: "F", want: false},
		{value: "nope", want: true},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			ResetConfigForTest()
			t.Cleanup(ResetConfigForTest)
			t.Setenv("SEED_SAMPLE_DATA", tt.value)

			assert.Equal(t, tt.want, LoadConfig().SeedSampleData)
		})
	}
}
