package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository/mocks"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
)

func TestCreatePatient(t *testing.T) {
	repo := new(mocks.PatientRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Patient) bool {
		return p.Name == "Jane Doe" && p.Age == 34 && p.Gender == "F"
	})).Return(nil)

	svc := NewService(repo)
	patient, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		Name: "Jane Doe", Age: "34", Gender: "F", Address: "12 Elm St", Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "12 Elm St", patient.Address)
	repo.AssertExpectations(t)
}

func TestCreatePatientBadAge(t *testing.T) {
	repo := new(mocks.PatientRepository)
	svc := NewService(repo)

	_, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{Name: "Jane Doe", Age: "-1"})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "age", appErr.Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
