package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements create the five tables. Each is safe to re-run.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admin (
		id            BIGSERIAL PRIMARY KEY,
		username      VARCHAR(50)  NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		patient_id BIGSERIAL PRIMARY KEY,
		name       VARCHAR(100) NOT NULL,
		age        INTEGER      NOT NULL CHECK (age >= 0),
		gender     VARCHAR(10)  NOT NULL,
		address    VARCHAR(255) NOT NULL,
		phone      VARCHAR(20)  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		doctor_id      BIGSERIAL PRIMARY KEY,
		name           VARCHAR(100) NOT NULL,
		specialization VARCHAR(100) NOT NULL,
		phone          VARCHAR(20)  NOT NULL,
		email          VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		appointment_id   BIGSERIAL PRIMARY KEY,
		patient_id       BIGINT      NOT NULL REFERENCES patients (patient_id),
		doctor_id        BIGINT      NOT NULL REFERENCES doctors (doctor_id),
		appointment_date DATE        NOT NULL,
		appointment_time TIME        NOT NULL,
		status           VARCHAR(20) NOT NULL DEFAULT 'scheduled'
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		staff_id BIGSERIAL PRIMARY KEY,
		name     VARCHAR(100)   NOT NULL,
		role     VARCHAR(50)    NOT NULL,
		phone    VARCHAR(20)    NOT NULL,
		salary   NUMERIC(10, 2) NOT NULL CHECK (salary >= 0)
	)`,
}

// Schema creates the tables the repositories rely on.
type Schema struct {
	BaseRepository
}

func NewSchema(db *sqlx.DB) *Schema {
	return &Schema{BaseRepository: NewBaseRepository(db, nil)}
}

// Init creates every missing table in one transaction.
func (s *Schema) Init(ctx context.Context) error {
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to initialise schema: %w", err)
	}
	return nil
}
