package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/jwalitptl/hospital-admin/internal/repository"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
)

// SQLSTATE codes the repositories inspect.
const (
	codeUniqueViolation      pq.ErrorCode = "23505"
	codeForeignKeyViolation  pq.ErrorCode = "23503"
	codeNotNullViolation     pq.ErrorCode = "23502"
	codeCheckViolation       pq.ErrorCode = "23514"
	codeInvalidText          pq.ErrorCode = "22P02"
	codeInvalidDatetime      pq.ErrorCode = "22007"
	codeDatetimeOutOfRange   pq.ErrorCode = "22008"
	codeNumericOutOfRange    pq.ErrorCode = "22003"
	codeStringDataRightTrunc pq.ErrorCode = "22001"
)

// foreign key constraint name -> form field
var constraintFields = map[string]string{
	"appointments_patient_id_fkey": "patient_id",
	"appointments_doctor_id_fkey":  "doctor_id",
}

func mapError(op string, err error) error {
	if _, ok := apperrors.As(err); ok {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(entity(op), repository.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeForeignKeyViolation:
			field := constraintFields[pqErr.Constraint]
			return apperrors.Validation(field, "referenced record does not exist", err)
		case codeNotNullViolation:
			return apperrors.Validation(pqErr.Column, "is required", err)
		case codeCheckViolation:
			return apperrors.Validation(checkField(pqErr.Constraint), "is out of range", err)
		case codeInvalidText, codeInvalidDatetime, codeDatetimeOutOfRange, codeNumericOutOfRange, codeStringDataRightTrunc:
			return apperrors.Validation(pqErr.Column, "is malformed", err)
		}
	}

	return apperrors.Persistence(op, err)
}

// entity returns the table part of an op name such as admin.get_by_username.
func entity(op string) string {
	if i := strings.Index(op, "."); i >= 0 {
		return op[:i]
	}
	return op
}

// checkField extracts the column from a default check constraint name such as staff_salary_check.
func checkField(constraint string) string {
	name := strings.TrimSuffix(constraint, "_check")
	if i := strings.Index(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return name
}
