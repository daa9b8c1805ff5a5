package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

type staffRepository struct {
	BaseRepository
}

func NewStaffRepository(db *sqlx.DB, m *metrics.Metrics) repository.StaffRepository {
	return &staffRepository{BaseRepository: NewBaseRepository(db, m)}
}

func (r *staffRepository) Create(ctx context.Context, staff *model.Staff) error {
	query := `
		INSERT INTO staff (name, role, phone, salary)
		VALUES ($1, $2, $3, $4)
		RETURNING staff_id
	`
	return r.observe("staff.create", func() error {
		return r.db.QueryRowxContext(ctx, query,
			staff.Name,
			staff.Role,
			staff.Phone,
			staff.Salary,
		).Scan(&staff.ID)
	})
}

func (r *staffRepository) List(ctx context.Context) ([]*model.Staff, error) {
	query := `
		SELECT staff_id, name, role, phone, salary
		FROM staff
		ORDER BY staff_id
	`
	staff := []*model.Staff{}
	err := r.observe("staff.list", func() error {
		return r.db.SelectContext(ctx, &staff, query)
	})
	return staff, err
}
