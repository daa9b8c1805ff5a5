package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

type adminRepository struct {
	BaseRepository
}

func NewAdminRepository(db *sqlx.DB, m *metrics.Metrics) repository.AdminRepository {
	return &adminRepository{BaseRepository: NewBaseRepository(db, m)}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	query := `SELECT id, username, password_hash FROM admin WHERE username = $1`

	var admin model.Admin
	err := r.observe("admin.get_by_username", func() error {
		return r.db.GetContext(ctx, &admin, query, username)
	})
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) SeedDefault(ctx context.Context, admin *model.Admin) (bool, error) {
	query := `
		INSERT INTO admin (username, password_hash)
		SELECT $1, $2
		WHERE NOT EXISTS (SELECT 1 FROM admin)
	`

	var affected int64
	start := time.Now()
	res, err := r.db.ExecContext(ctx, query, admin.Username, admin.PasswordHash)
	if err == nil {
		affected, err = res.RowsAffected()
	}
	r.metrics.ObserveDB("admin.seed", start, err)

	if err != nil {
		// a concurrent starter won the race
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation {
			return false, nil
		}
		return false, mapError("admin.seed", err)
	}
	return affected == 1, nil
}
