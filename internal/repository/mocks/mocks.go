// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/hospital-admin/internal/model"
)

type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *AdminRepository) SeedDefault(ctx context.Context, admin *model.Admin) (bool, error) {
	args := m.Called(ctx, admin)
	return args.Bool(0), args.Error(1)
}

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *PatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Patient), args.Error(1)
}

func (m *PatientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PatientRepository) ListOptions(ctx context.Context) ([]*model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Option), args.Error(1)
}

type DoctorRepository struct {
	mock.Mock
}

func (m *DoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *DoctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Doctor), args.Error(1)
}

func (m *DoctorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *DoctorRepository) ListOptions(ctx context.Context) ([]*model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Option), args.Error(1)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *AppointmentRepository) ListDetailed(ctx context.Context) ([]*model.AppointmentView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AppointmentView), args.Error(1)
}

type StaffRepository struct {
	mock.Mock
}

func (m *StaffRepository) Create(ctx context.Context, staff *model.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *StaffRepository) List(ctx context.Context) ([]*model.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Staff), args.Error(1)
}
