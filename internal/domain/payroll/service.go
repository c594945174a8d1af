package payroll

import "context"

type PayrollService interface {
	// List returns the year's payslips, most recent period first.
	List(ctx context.Context, year int) ([]Payslip, error)
	Get(ctx context.Context, period string) (Payslip, error)
}
