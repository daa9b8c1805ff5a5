package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(db *sqlx.DB, m *metrics.Metrics) repository.AppointmentRepository {
	return &appointmentRepository{BaseRepository: NewBaseRepository(db, m)}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			patient_id, doctor_id, appointment_date, appointment_time, status
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING appointment_id
	`
	return r.observe("appointments.create", func() error {
		return r.db.QueryRowxContext(ctx, query,
			appointment.PatientID,
			appointment.DoctorID,
			appointment.Date,
			appointment.Time,
			appointment.Status,
		).Scan(&appointment.ID)
	})
}

// ListDetailed joins each appointment with its patient and doctor names.
func (r *appointmentRepository) ListDetailed(ctx context.Context) ([]*model.AppointmentView, error) {
	query := `
		SELECT a.appointment_id,
			   p.name AS patient_name,
			   d.name AS doctor_name,
			   to_char(a.appointment_date, 'YYYY-MM-DD') AS appointment_date,
			   to_char(a.appointment_time, 'HH24:MI') AS appointment_time,
			   a.status
		FROM appointments a
		JOIN patients p ON a.patient_id = p.patient_id
		JOIN doctors d ON a.doctor_id = d.doctor_id
		ORDER BY a.appointment_id
	`
	views := []*model.AppointmentView{}
	err := r.observe("appointments.list_detailed", func() error {
		return r.db.SelectContext(ctx, &views, query)
	})
	return views, err
}
