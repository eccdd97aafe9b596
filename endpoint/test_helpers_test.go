package endpoint_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ariebrainware/patient-referral/config"
	"github.com/ariebrainware/patient-referral/endpoint"
	"github.com/ariebrainware/patient-referral/middleware"
	"github.com/ariebrainware/patient-referral/model"
	"github.com/ariebrainware/patient-referral/referral"
	"github.com/ariebrainware/patient-referral/store"
	"github.com/gin-gonic/gin"
)

// alwaysAvailable makes doctor recommendations deterministic.
var alwaysAvailable = referral.AvailabilityFunc(func(string, string) bool { return true })

// setupTestRouter wires the full API over a seeded memory store and an in-memory sqlite profile table.
func setupTestRouter(t *testing.T, opts ...referral.Option) (*gin.Engine, *referral.Service) {
	t.Helper()

	db, err := config.ConnectDatabase()
	if err != nil {
		t.Fatalf("failed to connect test DB: %v", err)
	}
	if err := store.NewGormStore(db).AutoMigrate(); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	patients := store.NewMemoryStore()
	if err := store.Seed(context.Background(), patients, model.SamplePatients()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	opts = append([]referral.Option{
		referral.WithProfiles(store.NewGormProfiles(db)),
		referral.WithAvailability(alwaysAvailable),
	}, opts...)
	svc := referral.NewService(patients, opts...)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ServiceMiddleware(svc))
	endpoint.RegisterRoutes(r)
	return r, svc
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	switch v := body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = strings.NewReader(string(b))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, response
}

func toStrings(t *testing.T, v interface{}) []string {
	t.Helper()
	items, ok := v.([]interface{})
	if !ok {
		t.Fatalf("expected JSON array, got %T", v)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.(string))
	}
	return out
}
