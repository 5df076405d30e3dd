package scheduling

import (
	"context"
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apptWithStatus(status string) *fakeApptRepo {
	return &fakeApptRepo{appts: []*models.Appointment{
		{ID: "a1", DoctorID: "doc-1", PatientID: "pat-1", Date: "2026-03-03", Time: "09:00", Status: status},
	}}
}

func TestConfirmPendingAppointment(t *testing.T) {
	appts := apptWithStatus(models.StatusPending)
	svc, notifier, _, _ := newTestService(doctorWithRules(), &fakePatientRepo{}, appts, monday)

	appt, err := svc.ConfirmAppointment(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, appt.Status)

	require.Eventually(t, func() bool {
		d, p := notifier.counts()
		return d == 1 && p == 1
	}, time.Second, 5*time.Millisecond)
}

func TestConfirmUnknownAppointment(t *testing.T) {
	svc, _, _, _ := newTestService(doctorWithRules(), &fakePatientRepo{}, &fakeApptRepo{}, monday)

	_, err := svc.ConfirmAppointment(context.Background(), "a-missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestConfirmRejectsNonPending(t *testing.T) {
	for _, status := range []string{models.StatusConfirmed, models.StatusCancelled, models.StatusDone} {
		t.Run(status, func(t *testing.T) {
			svc, _, _, _ := newTestService(doctorWithRules(), &fakePatientRepo{}, apptWithStatus(status), monday)

			_, err := svc.ConfirmAppointment(context.Background(), "a1")
			assert.ErrorIs(t, err, ErrIllegalTransition)
		})
	}
}

func TestCancelByHoldingPatient(t *testing.T) {
	appts := apptWithStatus(models.StatusConfirmed)
	svc, _, cache, _ := newTestService(doctorWithRules(), &fakePatientRepo{}, appts, monday)

	appt, err := svc.CancelAppointment(context.Background(), "a1", "pat-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, appt.Status)

	cache.mu.Lock()
	defer cache.mu.Unlock()
	assert.Contains(t, cache.invalidated, doctorListingKey("doc-1"))
	assert.Contains(t, cache.invalidated, patientListingKey("pat-1"))
}

func TestCancelByWrongPatientLooksLikeMissing(t *testing.T) {
	// A foreign appointment id must be indistinguishable from a nonexistent
	// one, so the holder is not leaked.
	appts := apptWithStatus(models.StatusPending)
	svc, _, _, _ := newTestService(doctorWithRules(), &fakePatientRepo{}, appts, monday)

	_, err := svc.CancelAppointment(context.Background(), "a1", "pat-2")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	svc, _, _, _ := newTestService(doctorWithRules(), &fakePatientRepo{}, apptWithStatus(models.StatusCancelled), monday)

	_, err := svc.CancelAppointment(context.Background(), "a1", "pat-1")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCompleteFromPendingAndConfirmed(t *testing.T) {
	for _, status := range []string{models.StatusPending, models.StatusConfirmed} {
		t.Run(status, func(t *testing.T) {
			svc, _, _, _ := newTestService(doctorWithRules(), &fakePatientRepo{}, apptWithStatus(status), monday)

			appt, err := svc.CompleteAppointment(context.Background(), "a1")
			require.NoError(t, err)
			assert.Equal(t, models.StatusDone, appt.Status)
		})
	}
}

func TestCompleteIsTerminal(t *testing.T) {
	svc, _, _, _ := newTestService(doctorWithRules(), &fakePatientRepo{}, apptWithStatus(models.StatusDone), monday)

	_, err := svc.CompleteAppointment(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCancelledSlotOpensForRebooking(t *testing.T) {
	// Cancelling frees the slot for availability and lets another patient
	// take it.
	appts := apptWithStatus(models.StatusConfirmed)
	svc, _, _, _ := newTestService(doctorWithRules(tuesdayNineRule()), &fakePatientRepo{}, appts, monday.Add(8*time.Hour))

	_, err := svc.CancelAppointment(context.Background(), "a1", "pat-1")
	require.NoError(t, err)

	report, err := svc.GetAvailableWorkingHours(context.Background(), "doc-1", 7, "")
	require.NoError(t, err)
	require.Len(t, report.Days, 1)
	assert.Equal(t, "09:00", report.Days[0].Slots[0].Time)

	req := validBooking()
	req.PatientID = "pat-2"
	booked, err := svc.BookAppointment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, booked.Status)
}

func TestLifecycleValidatesIDs(t *testing.T) {
	svc, _, _, _ := newTestService(doctorWithRules(), &fakePatientRepo{}, &fakeApptRepo{}, monday)

	_, err := svc.ConfirmAppointment(context.Background(), "")
	assert.True(t, IsValidationError(err))

	_, err = svc.CompleteAppointment(context.Background(), "")
	assert.True(t, IsValidationError(err))

	_, err = svc.CancelAppointment(context.Background(), "a1", "")
	assert.True(t, IsValidationError(err))
}
