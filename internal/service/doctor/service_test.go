package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository/mocks"
)

func TestCreateDoctor(t *testing.T) {
	repo := new(mocks.DoctorRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Doctor")).Return(nil)

	doctor, err := NewService(repo).CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name: "Dr. Smith", Specialization: "Cardiology", Phone: "555-0102", Email: "smith@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", doctor.Specialization)
}

func TestListDoctorsWrapsError(t *testing.T) {
	repo := new(mocks.DoctorRepository)
	cause := errors.New("boom")
	repo.On("List", mock.Anything).Return(nil, cause)

	_, err := NewService(repo).ListDoctors(context.Background())
	assert.ErrorIs(t, err, cause)
}
