package appointment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	ListAppointments(ctx context.Context) (*model.AppointmentListing, error)
}

type Service struct {
	repo     repository.AppointmentRepository
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
}

func NewService(repo repository.AppointmentRepository, patients repository.PatientRepository, doctors repository.DoctorRepository) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		doctors:  doctors,
	}
}

// CreateAppointment rejects references to patients or doctors that do not exist
// before inserting. The foreign keys still catch a row deleted in between.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	appt, err := parseRequest(req)
	if err != nil {
		return nil, err
	}

	ok, err := s.patients.Exists(ctx, appt.PatientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check patient: %w", err)
	}
	if !ok {
		return nil, apperrors.Validation("patient_id", "patient does not exist", nil)
	}

	ok, err = s.doctors.Exists(ctx, appt.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check doctor: %w", err)
	}
	if !ok {
		return nil, apperrors.Validation("doctor_id", "doctor does not exist", nil)
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appt, nil
}

func (s *Service) ListAppointments(ctx context.Context) (*model.AppointmentListing, error) {
	appointments, err := s.repo.ListDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	patients, err := s.patients.ListOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient options: %w", err)
	}
	doctors, err := s.doctors.ListOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctor options: %w", err)
	}

	return &model.AppointmentListing{
		Appointments: appointments,
		Patients:     patients,
		Doctors:      doctors,
	}, nil
}

func parseRequest(req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	patientID, err := parseID("patient_id", req.PatientID)
	if err != nil {
		return nil, err
	}
	doctorID, err := parseID("doctor_id", req.DoctorID)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse(model.AppointmentDateLayout, req.Date); err != nil {
		return nil, apperrors.Validation("appointment_date", "must be a date in YYYY-MM-DD format", err)
	}
	if _, err := time.Parse(model.AppointmentTimeLayout, req.Time); err != nil {
		return nil, apperrors.Validation("appointment_time", "must be a time in HH:MM format", err)
	}
	if req.Status == "" {
		return nil, apperrors.Validation("status", "is required", nil)
	}

	return &model.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
	}, nil
}

func parseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation(field, "must be a positive integer", err)
	}
	return id, nil
}
