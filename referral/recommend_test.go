package referral

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendDoctors_UnknownDepartment(t *testing.T) {
	svc, st := newTestService(t)
	before := st.Len()

	doctors, err := svc.RecommendDoctors(context.Background(), RecommendRequest{PatientID: "22222222222", Department: "Oncology"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrInvalidDepartment)
	assert.Nil(t, doctors)
	assert.Equal(t, before, st.Len(), "a rejected request must not create a record")
}

func TestRecommendDoctors_AllAvailableWithPastVisit(t *testing.T) {
	svc, _ := newTestService(t)

	doctors, err := svc.RecommendDoctors(context.Background(), RecommendRequest{PatientID: "12345678901", Department: "Neurology"})
	require.NoError(t, err)
	require.Len(t, doctors, 3)

	assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
	assert.Equal(t, "Neurology", doctors[0].Specialization)
	require.NotNil(t, doctors[0].PastVisit)
	assert.Equal(t, "2024-01-15", doctors[0].PastVisit.Date)
	assert.Nil(t, doctors[1].PastVisit)
	assert.Nil(t, doctors[2].PastVisit)
}

func TestRecommendDoctors_PastVisitIsMostRecent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateAppointment(ctx, AppointmentRequest{PatientID: "12345678901", Department: "Neurology", DoctorIndex: 1, Date: "2025-03-03"})
	require.NoError(t, err)

	doctors, err := svc.RecommendDoctors(ctx, RecommendRequest{PatientID: "12345678901", Department: "Neurology"})
	require.NoError(t, err)
	require.NotNil(t, doctors[0].PastVisit)
	assert.Equal(t, "2025-03-03", doctors[0].PastVisit.Date)
}

func TestRecommendDoctors_FiltersThroughAvailability(t *testing.T) {
	onlyMiller := AvailabilityFunc(func(_, doctor string) bool { return doctor == "David Miller" })
	svc, _ := newTestService(t, WithAvailability(onlyMiller))

	doctors, err := svc.RecommendDoctors(context.Background(), RecommendRequest{PatientID: "22222222222", Department: "Neurology"})
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. David Miller", doctors[0].Name)
}

func TestRecommendDoctors_NoneAvailable(t *testing.T) {
	none := AvailabilityFunc(func(_, _ string) bool { return false })
	svc, _ := newTestService(t, WithAvailability(none))

	doctors, err := svc.RecommendDoctors(context.Background(), RecommendRequest{PatientID: "22222222222", Department: "ENT"})
	require.NoError(t, err)
	assert.NotNil(t, doctors)
	assert.Empty(t, doctors)
}

func TestRandomAvailability_SeededIsReproducible(t *testing.T) {
	a := NewRandomAvailability(42)
	b := NewRandomAvailability(42)

	available := 0
	for i := 0; i < 200; i++ {
		got := a.IsAvailable("ENT", "John Smith")
		assert.Equal(t, got, b.IsAvailable("ENT", "John Smith"))
		if got {
			available++
		}
	}
	assert.Greater(t, available, 50)
	assert.Less(t, available, 150)
}
