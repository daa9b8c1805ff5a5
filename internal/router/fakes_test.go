package router

import (
	"context"
	"sync"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
)

// memDB is an in-memory stand-in for the five tables. failWith, when set,
// makes every write fail the way a lost connection would.
type memDB struct {
	mu           sync.Mutex
	admins       []*model.Admin
	patients     []*model.Patient
	doctors      []*model.Doctor
	appointments []*model.Appointment
	staff        []*model.Staff
	failWith     error
}

func (db *memDB) writes() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.patients) + len(db.doctors) + len(db.appointments) + len(db.staff)
}

func (db *memDB) fail(op string) error {
	if db.failWith != nil {
		return apperrors.Persistence(op, db.failWith)
	}
	return nil
}

type memAdmins struct{ db *memDB }

func (r memAdmins) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, a := range r.db.admins {
		if a.Username == username {
			out := *a
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memAdmins) SeedDefault(_ context.Context, admin *model.Admin) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if len(r.db.admins) > 0 {
		return false, nil
	}
	admin.ID = 1
	r.db.admins = append(r.db.admins, admin)
	return true, nil
}

type memPatients struct{ db *memDB }

func (r memPatients) Create(_ context.Context, p *model.Patient) error {
	if err := r.db.fail("patient.create"); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p.ID = int64(len(r.db.patients) + 1)
	r.db.patients = append(r.db.patients, p)
	return nil
}

func (r memPatients) List(_ context.Context) ([]*model.Patient, error) {
	if err := r.db.fail("patient.list"); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]*model.Patient{}, r.db.patients...), nil
}

func (r memPatients) Exists(_ context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return id >= 1 && int(id) <= len(r.db.patients), nil
}

func (r memPatients) ListOptions(_ context.Context) ([]*model.Option, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []*model.Option{}
	for _, p := range r.db.patients {
		out = append(out, &model.Option{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

type memDoctors struct{ db *memDB }

func (r memDoctors) Create(_ context.Context, d *model.Doctor) error {
	if err := r.db.fail("doctor.create"); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	d.ID = int64(len(r.db.doctors) + 1)
	r.db.doctors = append(r.db.doctors, d)
	return nil
}

func (r memDoctors) List(_ context.Context) ([]*model.Doctor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]*model.Doctor{}, r.db.doctors...), nil
}

func (r memDoctors) Exists(_ context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return id >= 1 && int(id) <= len(r.db.doctors), nil
}

func (r memDoctors) ListOptions(_ context.Context) ([]*model.Option, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []*model.Option{}
	for _, d := range r.db.doctors {
		out = append(out, &model.Option{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

type memAppointments struct{ db *memDB }

func (r memAppointments) Create(_ context.Context, a *model.Appointment) error {
	if err := r.db.fail("appointment.create"); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a.ID = int64(len(r.db.appointments) + 1)
	r.db.appointments = append(r.db.appointments, a)
	return nil
}

func (r memAppointments) ListDetailed(_ context.Context) ([]*model.AppointmentView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []*model.AppointmentView{}
	for _, a := range r.db.appointments {
		out = append(out, &model.AppointmentView{
			ID:          a.ID,
			PatientName: r.db.patients[a.PatientID-1].Name,
			DoctorName:  r.db.doctors[a.DoctorID-1].Name,
			Date:        a.Date,
			Time:        a.Time,
			Status:      a.Status,
		})
	}
	return out, nil
}

type memStaff struct{ db *memDB }

func (r memStaff) Create(_ context.Context, s *model.Staff) error {
	if err := r.db.fail("staff.create"); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s.ID = int64(len(r.db.staff) + 1)
	r.db.staff = append(r.db.staff, s)
	return nil
}

func (r memStaff) List(_ context.Context) ([]*model.Staff, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]*model.Staff{}, r.db.staff...), nil
}
