package repository

import (
	"context"
	"errors"

	"github.com/jwalitptl/hospital-admin/internal/model"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("record not found")

// All repository interfaces in one file
type (
	// AdminRepository reads admin credentials and owns the seed row
	AdminRepository interface {
		GetByUsername(ctx context.Context, username string) (*model.Admin, error)
		// SeedDefault inserts admin only when the table is empty.
		SeedDefault(ctx context.Context, admin *model.Admin) (bool, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		List(ctx context.Context) ([]*model.Patient, error)
		Exists(ctx context.Context, id int64) (bool, error)
		ListOptions(ctx context.Context) ([]*model.Option, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		List(ctx context.Context) ([]*model.Doctor, error)
		Exists(ctx context.Context, id int64) (bool, error)
		ListOptions(ctx context.Context) ([]*model.Option, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		ListDetailed(ctx context.Context) ([]*model.AppointmentView, error)
	}

	StaffRepository interface {
		Create(ctx context.Context, staff *model.Staff) error
		List(ctx context.Context) ([]*model.Staff, error)
	}
)
