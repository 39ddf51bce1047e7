package app

import (
	"context"
	"fmt"

	"github.com/example/mnemona/internal/ports/primary"
	"github.com/example/mnemona/internal/ports/secondary"
)

// DepartmentServiceImpl implements the DepartmentService interface.
type DepartmentServiceImpl struct {
	departmentRepo secondary.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService with injected dependencies.
func NewDepartmentService(departmentRepo secondary.DepartmentRepository) *DepartmentServiceImpl {
	return &DepartmentServiceImpl{
		departmentRepo: departmentRepo,
	}
}

// ListDepartments retrieves all departments ordered by code.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]*primary.Department, error) {
	records, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	departments := make([]*primary.Department, len(records))
	for i, record := range records {
		departments[i] = &primary.Department{
			ID:   record.ID,
			Code: record.Code,
			Name: record.Name,
		}
	}

	return departments, nil
}

// Ensure DepartmentServiceImpl implements the interface
var _ primary.DepartmentService = (*DepartmentServiceImpl)(nil)
