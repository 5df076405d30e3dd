package scheduling

import (
	"context"
	"errors"
	"sync"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	patientRepo "medibook/database/repository/patient"
	"medibook/models"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
	getErr  error
	calls   int
}

func (r *fakeDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	r.calls++
	if r.getErr != nil {
		return nil, r.getErr
	}
	d, ok := r.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	return d, nil
}

func (r *fakeDoctorRepo) GetByIDs(_ context.Context, ids []string) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, id := range ids {
		if d, ok := r.doctors[id]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) UpdateClinicInfo(context.Context, string, map[string]any) error {
	return nil
}

type fakePatientRepo struct {
	patients map[string]*models.Patient
}

func (r *fakePatientRepo) GetByID(_ context.Context, id string) (*models.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, patientRepo.ErrPatientNotFound
	}
	return p, nil
}

func (r *fakePatientRepo) GetByIDs(_ context.Context, ids []string) ([]models.Patient, error) {
	var out []models.Patient
	for _, id := range ids {
		if p, ok := r.patients[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

// fakeApptRepo mimics the Mongo repository, including the unique pending-slot
// index semantics on Insert and Revive.
type fakeApptRepo struct {
	appts []*models.Appointment

	bookedErr error
	insertErr error

	bookedCalls int
	lastStart   string
	lastEnd     string
}

func (r *fakeApptRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	for _, a := range r.appts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (r *fakeApptRepo) GetBookedSlots(_ context.Context, doctorID, start, end string) ([]models.BookedSlot, error) {
	r.bookedCalls++
	r.lastStart, r.lastEnd = start, end
	if r.bookedErr != nil {
		return nil, r.bookedErr
	}
	var out []models.BookedSlot
	for _, a := range r.appts {
		if a.DoctorID != doctorID || a.Status == models.StatusCancelled {
			continue
		}
		if a.Date >= start && a.Date < end {
			out = append(out, models.BookedSlot{Date: a.Date, Time: a.Time})
		}
	}
	return out, nil
}

func (r *fakeApptRepo) FindPending(_ context.Context, doctorID, date, timeStr string) (*models.Appointment, error) {
	for _, a := range r.appts {
		if a.DoctorID == doctorID && a.Date == date && a.Time == timeStr && a.Status == models.StatusPending {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeApptRepo) Insert(_ context.Context, appt *models.Appointment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	for _, a := range r.appts {
		if a.DoctorID == appt.DoctorID && a.Date == appt.Date && a.Time == appt.Time && a.Status == models.StatusPending {
			return appointmentRepo.ErrSlotTaken
		}
	}
	cp := *appt
	r.appts = append(r.appts, &cp)
	return nil
}

func (r *fakeApptRepo) Revive(_ context.Context, doctorID, patientID, date, timeStr string, fields models.AppointmentUpdate) (*models.Appointment, error) {
	for _, a := range r.appts {
		if a.DoctorID == doctorID && a.PatientID == patientID && a.Date == date && a.Time == timeStr && a.Status == models.StatusCancelled {
			a.Status = models.StatusPending
			a.Method = fields.Method
			a.Reason = fields.Reason
			a.Notes = fields.Notes
			a.Cost = fields.Cost
			a.Location = fields.Location
			cp := *a
			return &cp, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (r *fakeApptRepo) UpdateStatus(_ context.Context, id string, from []string, to string) (*models.Appointment, error) {
	for _, a := range r.appts {
		if a.ID != id {
			continue
		}
		for _, f := range from {
			if a.Status == f {
				a.Status = to
				cp := *a
				return &cp, nil
			}
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (r *fakeApptRepo) ListByDoctor(_ context.Context, doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) ListByPatient(_ context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) countForTuple(doctorID, patientID, date, timeStr string) int {
	n := 0
	for _, a := range r.appts {
		if a.DoctorID == doctorID && a.PatientID == patientID && a.Date == date && a.Time == timeStr {
			n++
		}
	}
	return n
}

type fakeNotifier struct {
	mu          sync.Mutex
	doctorPush  int
	patientPush int
	fail        bool
}

func (n *fakeNotifier) SendDoctorPush(context.Context, string, string, string, map[string]string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.doctorPush++
	if n.fail {
		return errFakePush
	}
	return nil
}

func (n *fakeNotifier) SendPatientPush(context.Context, string, string, string, map[string]string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.patientPush++
	if n.fail {
		return errFakePush
	}
	return nil
}

func (n *fakeNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.doctorPush, n.patientPush
}

var errFakePush = errors.New("fake push failure")

type fakeCache struct {
	mu          sync.Mutex
	entries     map[string][]models.Appointment
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]models.Appointment)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]models.Appointment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	appts, ok := c.entries[key]
	return appts, ok
}

func (c *fakeCache) Set(_ context.Context, key string, appts []models.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = appts
}

func (c *fakeCache) Invalidate(_ context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
		c.invalidated = append(c.invalidated, k)
	}
}

type fakeReminders struct {
	mu        sync.Mutex
	scheduled []string
	err       error
}

func (r *fakeReminders) ScheduleReminder(appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.scheduled = append(r.scheduled, appt.ID)
	return nil
}

func newTestService(doctors *fakeDoctorRepo, patients *fakePatientRepo, appts *fakeApptRepo, now time.Time) (*DefaultSchedulingService, *fakeNotifier, *fakeCache, *fakeReminders) {
	notifier := &fakeNotifier{}
	cache := newFakeCache()
	reminders := &fakeReminders{}
	svc := &DefaultSchedulingService{
		DoctorRepo:  doctors,
		PatientRepo: patients,
		ApptRepo:    appts,
		Notifier:    notifier,
		Reminders:   reminders,
		Cache:       cache,
		Clock:       fixedClock{t: now},
		WindowDays:  14,
		LeadTime:    30 * time.Minute,
	}
	return svc, notifier, cache, reminders
}
