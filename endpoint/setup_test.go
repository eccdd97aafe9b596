package endpoint_test

import (
	"os"
	"testing"

	"github.com/ariebrainware/patient-referral/config"
	"github.com/gin-gonic/gin"
)

// TestMain sets up consistent test configuration for all tests in the endpoint_test package.
// This prevents test order dependency issues caused by the singleton config pattern.
func TestMain(m *testing.M) {
	os.Setenv("APPENV", "test")
	os.Setenv("GINMODE", "release")
	os.Setenv("REDIS_ENABLED", "false")

	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	os.Exit(m.Run())
}
