package payroll

import (
	"context"
	"sort"

	"github.com/hrmviet/chamcong-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	repo payroll.PayrollRepository
}

func NewPayrollService(repo payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{repo: repo}
}

// List implements payroll.PayrollService. Periods are YYYY-MM so the
// lexicographic order is the chronological one.
func (s *PayrollServiceImpl) List(ctx context.Context, year int) ([]payroll.Payslip, error) {
	payslips, err := s.repo.List(ctx, year)
	if err != nil {
		return nil, err
	}
	sort.Slice(payslips, func(i, j int) bool {
		return payslips[i].Period > payslips[j].Period
	})
	return payslips, nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, period string) (payroll.Payslip, error) {
	return s.repo.Get(ctx, period)
}
