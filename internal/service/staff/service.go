package staff

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
)

type StaffService interface {
	CreateStaff(ctx context.Context, req *model.CreateStaffRequest) (*model.Staff, error)
	ListStaff(ctx context.Context) ([]*model.Staff, error)
}

type Service struct {
	repo repository.StaffRepository
}

func NewService(repo repository.StaffRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateStaff(ctx context.Context, req *model.CreateStaffRequest) (*model.Staff, error) {
	salary, err := strconv.ParseFloat(req.Salary, 64)
	if err != nil {
		return nil, apperrors.Validation("salary", "must be a decimal number", err)
	}
	if salary < 0 {
		return nil, apperrors.Validation("salary", "must not be negative", nil)
	}

	staff := &model.Staff{
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
		Salary: salary,
	}
	if err := s.repo.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return staff, nil
}

func (s *Service) ListStaff(ctx context.Context) ([]*model.Staff, error) {
	staff, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}
