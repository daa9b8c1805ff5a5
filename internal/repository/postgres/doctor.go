package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(db *sqlx.DB, m *metrics.Metrics) repository.DoctorRepository {
	return &doctorRepository{BaseRepository: NewBaseRepository(db, m)}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (name, specialization, phone, email)
		VALUES ($1, $2, $3, $4)
		RETURNING doctor_id
	`
	return r.observe("doctors.create", func() error {
		return r.db.QueryRowxContext(ctx, query,
			doctor.Name,
			doctor.Specialization,
			doctor.Phone,
			doctor.Email,
		).Scan(&doctor.ID)
	})
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `
		SELECT doctor_id, name, specialization, phone, email
		FROM doctors
		ORDER BY doctor_id
	`
	doctors := []*model.Doctor{}
	err := r.observe("doctors.list", func() error {
		return r.db.SelectContext(ctx, &doctors, query)
	})
	return doctors, err
}

func (r *doctorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM doctors WHERE doctor_id = $1)`
	var exists bool
	err := r.observe("doctors.exists", func() error {
		return r.db.GetContext(ctx, &exists, query, id)
	})
	return exists, err
}

func (r *doctorRepository) ListOptions(ctx context.Context) ([]*model.Option, error) {
	query := `SELECT doctor_id AS id, name FROM doctors ORDER BY doctor_id`
	options := []*model.Option{}
	err := r.observe("doctors.list_options", func() error {
		return r.db.SelectContext(ctx, &options, query)
	})
	return options, err
}
