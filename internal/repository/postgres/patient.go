package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(db *sqlx.DB, m *metrics.Metrics) repository.PatientRepository {
	return &patientRepository{BaseRepository: NewBaseRepository(db, m)}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (name, age, gender, address, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING patient_id
	`
	return r.observe("patients.create", func() error {
		return r.db.QueryRowxContext(ctx, query,
			patient.Name,
			patient.Age,
			patient.Gender,
			patient.Address,
			patient.Phone,
		).Scan(&patient.ID)
	})
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `
		SELECT patient_id, name, age, gender, address, phone
		FROM patients
		ORDER BY patient_id
	`
	patients := []*model.Patient{}
	err := r.observe("patients.list", func() error {
		return r.db.SelectContext(ctx, &patients, query)
	})
	return patients, err
}

func (r *patientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM patients WHERE patient_id = $1)`
	var exists bool
	err := r.observe("patients.exists", func() error {
		return r.db.GetContext(ctx, &exists, query, id)
	})
	return exists, err
}

func (r *patientRepository) ListOptions(ctx context.Context) ([]*model.Option, error) {
	query := `SELECT patient_id AS id, name FROM patients ORDER BY patient_id`
	options := []*model.Option{}
	err := r.observe("patients.list_options", func() error {
		return r.db.SelectContext(ctx, &options, query)
	})
	return options, err
}
