package endpoint_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/ariebrainware/patient-referral/middleware"
	"github.com/ariebrainware/patient-referral/endpoint"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAppointment(t *testing.T, r *gin.Engine, tc, dept string, doctor int, date string) (int, map[string]interface{}) {
	t.Helper()
	w, resp := performRequest(t, r, http.MethodPost, "/api/appointment/create", map[string]interface{}{
		"tc_number":        tc,
		"department":       dept,
		"doctor_id":        doctor,
		"appointment_date": date,
	})
	return w.Code, resp
}

func TestCreateAppointment(t *testing.T) {
	r, _ := setupTestRouter(t)

	t.Run("seeded patient continues numbering", func(t *testing.T) {
		code, resp := createAppointment(t, r, "12345678901", "Neurology", 1, "2024-05-01 10:00")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, float64(3), resp["appointment_id"])
		assert.Equal(t, "Neurology", resp["department"])
		assert.Equal(t, "2024-05-01 10:00", resp["appointment_date"])
		assert.Equal(t, "Dr. Sarah Johnson", resp["doctor_name"])
	})

	t.Run("new patient starts at one", func(t *testing.T) {
		code, resp := createAppointment(t, r, "30000000000", "Cardiology", 3, "2024-06-01")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(1), resp["appointment_id"])
		assert.Equal(t, "Dr. Robert Taylor", resp["doctor_name"])
	})

	t.Run("doctor index out of range", func(t *testing.T) {
		code, resp := createAppointment(t, r, "12345678901", "Neurology", 4, "2024-05-01")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid doctor", resp["msg"])
	})

	t.Run("unknown department", func(t *testing.T) {
		code, resp := createAppointment(t, r, "12345678901", "Dermatology", 1, "2024-05-01")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid department", resp["msg"])
	})

	t.Run("missing date", func(t *testing.T) {
		w, _ := performRequest(t, r, http.MethodPost, "/api/appointment/create", map[string]interface{}{
			"tc_number":  "12345678901",
			"department": "ENT",
			"doctor_id":  1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateAppointment_ConcurrentRequestsGetDistinctIDs(t *testing.T) {
	r, _ := setupTestRouter(t)

	const n = 20
	var wg sync.WaitGroup
	ids := make(chan float64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code, resp := createAppointment(t, r, "40000000000", "ENT", 1+i%3, fmt.Sprintf("2024-07-%02d", i+1))
			if code == http.StatusOK {
				ids <- resp["appointment_id"].(float64)
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[float64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate appointment id %v", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestListAppointments(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, resp := performRequest(t, r, http.MethodGet, "/api/patient/98765432109/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	appts := resp["appointments"].([]interface{})
	require.Len(t, appts, 2)
	assert.Equal(t, "Pulmonology", appts[0].(map[string]interface{})["department"])

	w, resp = performRequest(t, r, http.MethodGet, "/api/patient/50000000000/appointments", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Patient not found", resp["msg"])
}

func TestUpdateAppointment(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, resp := performRequest(t, r, http.MethodPut, "/api/appointment/update", map[string]interface{}{
		"tc_number":      "12345678901",
		"appointment_id": 2,
		"new_date":       "2024-09-09 09:00",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Appointment updated successfully", resp["message"])

	_, resp = performRequest(t, r, http.MethodGet, "/api/patient/12345678901/appointments", nil)
	appts := resp["appointments"].([]interface{})
	assert.Equal(t, "2024-09-09 09:00", appts[1].(map[string]interface{})["date"])

	tests := []struct {
		name string
		tc   string
		id   int
		msg  string
	}{
		{name: "unknown appointment", tc: "12345678901", id: 99, msg: "Appointment not found"},
		{name: "unknown patient", tc: "60000000000", id: 1, msg: "Patient not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := performRequest(t, r, http.MethodPut, "/api/appointment/update", map[string]interface{}{
				"tc_number":      tt.tc,
				"appointment_id": tt.id,
				"new_date":       "2024-09-10",
			})
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, tt.msg, resp["msg"])
		})
	}
}

func TestCancelAppointment(t *testing.T) {
	r, _ := setupTestRouter(t)
	cancel := map[string]interface{}{"tc_number": "12345678901", "appointment_id": 1}

	w, resp := performRequest(t, r, http.MethodDelete, "/api/appointment/cancel", cancel)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Appointment cancelled successfully", resp["message"])

	_, resp = performRequest(t, r, http.MethodGet, "/api/patient/12345678901/appointments", nil)
	appts := resp["appointments"].([]interface{})
	require.Len(t, appts, 1)
	assert.Equal(t, float64(2), appts[0].(map[string]interface{})["id"])

	w, resp = performRequest(t, r, http.MethodDelete, "/api/appointment/cancel", cancel)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Appointment not found", resp["msg"])

	// Cancelled ids are not handed out again.
	code, resp := createAppointment(t, r, "12345678901", "ENT", 2, "2024-10-01")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(3), resp["appointment_id"])
	assert.Equal(t, "Dr. Emily Brown", resp["doctor_name"])
}

func TestListDepartments(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, resp := performRequest(t, r, http.MethodGet, "/api/departments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	depts := resp["data"].([]interface{})
	require.Len(t, depts, 5)
	ent := depts[0].(map[string]interface{})
	assert.Equal(t, "ENT", ent["name"])
	assert.Equal(t, []string{"Dr. John Smith", "Dr. Emily Brown", "Dr. Michael Davis"}, toStrings(t, ent["doctors"]))
}

func TestHandlers_WithoutService(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	endpoint.RegisterRoutes(r)

	w, resp := performRequest(t, r, http.MethodGet, "/api/departments", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Referral service not available", resp["msg"])
}

func TestRegisterRoutes_Guards(t *testing.T) {
	guarded := gin.New()
	blocked := false
	endpoint.RegisterRoutes(guarded, func(c *gin.Context) {
		blocked = true
		c.AbortWithStatus(http.StatusTooManyRequests)
	})

	w, _ := performRequest(t, guarded, http.MethodPost, "/api/patient/register", map[string]string{"tc_number": "1", "full_name": "x"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.True(t, blocked)

	// Guards are not applied to other routes.
	blocked = false
	w, _ = performRequest(t, guarded, http.MethodGet, "/api/departments", nil)
	assert.NotEqual(t, http.StatusTooManyRequests, w.Code)
	assert.False(t, blocked)
}

func TestAppointmentIDZeroIsNotFound(t *testing.T) {
	r, _ := setupTestRouter(t)

	w, resp := performRequest(t, r, http.MethodPut, "/api/appointment/update", map[string]interface{}{
		"tc_number":      "12345678901",
		"appointment_id": 0,
		"new_date":       "2024-09-10",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Appointment not found", resp["msg"])

	w, resp = performRequest(t, r, http.MethodDelete, "/api/appointment/cancel", map[string]interface{}{
		"tc_number":      "12345678901",
		"appointment_id": 0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Appointment not found", resp["msg"])
}
